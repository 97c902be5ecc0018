package models

// UserProfile lives in the document store, keyed by user_id. Profiles are
// provisioned by the identity flow; this service only ever updates them.
type UserProfile struct {
	UserID   string `bson:"user_id" json:"user_id"`
	Username string `bson:"username" json:"username"`
	UserRole string `bson:"user_role" json:"user_role"`
}

// Doc returns the field-set document written by profile updates.
func (u UserProfile) Doc() map[string]interface{} {
	return map[string]interface{}{
		"user_id":   u.UserID,
		"username":  u.Username,
		"user_role": u.UserRole,
	}
}
