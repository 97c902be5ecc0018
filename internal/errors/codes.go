package errors

// ErrorCode is a stable machine-readable code attached to every domain error.
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNameTaken ErrorCode = "CATEGORY_001"
	CategoryNotFound  ErrorCode = "CATEGORY_002"
)

// User error codes (USER_*)
const (
	UserNameTaken ErrorCode = "USER_001"
	UserNotFound  ErrorCode = "USER_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError ErrorCode = "SYSTEM_001"
	SystemStoreError    ErrorCode = "SYSTEM_002"
)

var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	CategoryNameTaken: "Category already exists!!",
	CategoryNotFound:  "Invalid category_id !!",

	UserNameTaken: "Username already exists!!",
	UserNotFound:  "Unknown User !!",

	SystemInternalError: "An unexpected error occurred",
	SystemStoreError:    "Storage operation failed",
}

// MessageOf returns the default message for a code.
func MessageOf(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}
