package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"unistay/errors"
	"unistay/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserStore persists accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// ToggleSaved flips one saved listing atomically and returns the updated user
	ToggleSaved(ctx context.Context, userID uint, propertyID string) (*models.User, bool, error)
}

// MemoryUserStore keeps accounts in process
type MemoryUserStore struct {
	mu      sync.RWMutex
	nextID  uint
	byID    map[uint]*models.User
	byEmail map[string]uint
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		nextID:  1,
		byID:    make(map[uint]*models.User),
		byEmail: make(map[string]uint),
	}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, ok := s.byEmail[email]; ok {
		return errors.ErrUserAlreadyExists
	}
	now := time.Now()
	user.ID = s.nextID
	user.CreatedAt, user.UpdatedAt = now, now
	s.nextID++

	s.byID[user.ID] = cloneUser(user)
	s.byEmail[email] = user.ID
	return nil
}

func (s *MemoryUserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return cloneUser(s.byID[id]), nil
}

func (s *MemoryUserStore) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[user.ID]; !ok {
		return errors.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	s.byID[user.ID] = cloneUser(user)
	return nil
}

func (s *MemoryUserStore) ToggleSaved(ctx context.Context, userID uint, propertyID string) (*models.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[userID]
	if !ok {
		return nil, false, errors.ErrUserNotFound
	}
	updated := cloneUser(u)
	added := updated.ToggleSaved(propertyID)
	updated.UpdatedAt = time.Now()
	s.byID[userID] = updated
	return cloneUser(updated), added, nil
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.SavedProperties = append(pq.StringArray(nil), u.SavedProperties...)
	return &c
}

// GormUserStore keeps accounts in postgres
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("LOWER(email) = ?", strings.ToLower(user.Email)).
		Count(&count).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to check email", err)
	}
	if count > 0 {
		return errors.ErrUserAlreadyExists
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to create user", err)
	}
	return nil
}

func (s *GormUserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load user", err)
	}
	return &user, nil
}

func (s *GormUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load user", err)
	}
	return &user, nil
}

func (s *GormUserStore) Update(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to update user", err)
	}
	return nil
}

// ToggleSaved locks the user row for the read-modify-write
func (s *GormUserStore) ToggleSaved(ctx context.Context, userID uint, propertyID string) (*models.User, bool, error) {
	var user models.User
	var added bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}
		added = user.ToggleSaved(propertyID)
		return tx.Model(&user).Update("saved_properties", user.SavedProperties).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, errors.ErrUserNotFound
		}
		return nil, false, errors.NewAppError(errors.ErrCodeDBError, "Failed to update saved listings", err)
	}
	return &user, added, nil
}
