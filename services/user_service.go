package services

import (
	"context"

	"unistay/errors"
	"unistay/models"
	"unistay/services/logger"
)

// UserService manages profiles and saved listings
type UserService struct {
	users  UserStore
	search *SearchService
	logger logger.Logger
}

func NewUserService(users UserStore, search *SearchService, log logger.Logger) *UserService {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &UserService{users: users, search: search, logger: log}
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// ToggleSaved adds or removes a listing and returns the new saved list and whether it was added
func (s *UserService) ToggleSaved(ctx context.Context, userID uint, propertyID string) ([]string, bool, error) {
	if _, err := s.search.FindByID(propertyID); err != nil {
		return nil, false, errors.NewAppError(errors.ErrCodeNotFound, "Property not found", err)
	}
	user, added, err := s.users.ToggleSaved(ctx, userID, propertyID)
	if err != nil {
		return nil, false, err
	}
	s.logger.Debug("user %d saved=%v property %s", userID, added, propertyID)
	return append([]string{}, user.SavedProperties...), added, nil
}

// Saved resolves the saved ids against the catalog, skipping unknown ids
func (s *UserService) Saved(ctx context.Context, userID uint) ([]models.Property, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Property, 0, len(user.SavedProperties))
	for _, id := range user.SavedProperties {
		if p, err := s.search.FindByID(id); err == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}
