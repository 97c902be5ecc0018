package services

import (
	"context"
	"log/slog"

	"expense-manager/internal/dto"
	"expense-manager/internal/errors"
	"expense-manager/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProfileCollection is the slice of the document accessor the profile
// service needs. internal/documents.Collection satisfies it.
type ProfileCollection interface {
	FindOne(ctx context.Context, query bson.M, projection bson.M) (bson.M, error)
	UpdateOne(ctx context.Context, query bson.M, patch bson.M, upsert bool) (int64, error)
}

// ProfileService updates user profile documents. Profiles are provisioned by
// the identity flow; an update against an unknown user fails rather than
// creating one.
type ProfileService struct {
	profiles ProfileCollection
}

// NewProfileService creates a new profile service.
func NewProfileService(profiles ProfileCollection) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Update requires that no other user owns the requested username and that the
// target user exists; only then is the profile patched. Both checks precede
// the write (check-then-act, no transactional guard — the store serializes
// conflicting writes but the window between check and write remains).
func (s *ProfileService) Update(ctx context.Context, req dto.UpdateProfileRequest, userID string) error {
	taken, err := s.profiles.FindOne(ctx,
		bson.M{
			"username": req.Username,
			"user_id":  bson.M{"$ne": req.UserID},
		},
		bson.M{"_id": 0, "user_id": 1},
	)
	if err != nil {
		return errors.Store(err)
	}
	if taken != nil {
		return errors.Conflict(errors.UserNameTaken)
	}

	existing, err := s.profiles.FindOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"_id": 0, "user_id": 1},
	)
	if err != nil {
		return errors.Store(err)
	}
	if existing == nil {
		return errors.NotFound(errors.UserNotFound)
	}

	profile := models.UserProfile{
		UserID:   req.UserID,
		Username: req.Username,
		UserRole: req.UserRole,
	}
	if _, err := s.profiles.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M(profile.Doc()), false); err != nil {
		slog.Error("profile update failed", "user_id", userID, "error", err)
		return errors.Store(err)
	}
	return nil
}
