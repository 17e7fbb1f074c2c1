package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"unistay/errors"
	"unistay/models"

	"gorm.io/gorm"
)

// BookingStore persists bookings; it satisfies commands.BookingWriter
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
	Get(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error)
}

// MemoryBookingStore keeps bookings in process
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
	now      func() time.Time
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{
		bookings: make(map[string]models.Booking),
		now:      time.Now,
	}
}

func (s *MemoryBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = s.now()
	}
	booking.UpdatedAt = booking.CreatedAt
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *MemoryBookingStore) Update(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[booking.ID]; !ok {
		return errors.ErrBookingNotFound
	}
	booking.UpdatedAt = s.now()
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *MemoryBookingStore) Get(ctx context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, errors.ErrBookingNotFound
	}
	return &b, nil
}

// ListByUser returns the user's bookings, newest first
func (s *MemoryBookingStore) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *MemoryBookingStore) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0)
	for _, b := range s.bookings {
		if b.PaymentStatus == models.PaymentStatusPending && b.CreatedAt.Before(cutoff) {
			out = append(out, b)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

// GormBookingStore keeps bookings in postgres
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to create booking", err)
	}
	return nil
}

func (s *GormBookingStore) Update(ctx context.Context, booking *models.Booking) error {
	if err := s.db.WithContext(ctx).Save(booking).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to update booking", err)
	}
	return nil
}

func (s *GormBookingStore) Get(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to load booking", err)
	}
	return &booking, nil
}

func (s *GormBookingStore) ListByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to list bookings", err)
	}
	return bookings, nil
}

func (s *GormBookingStore) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Where("payment_status = ? AND created_at < ?", models.PaymentStatusPending, cutoff).
		Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Failed to list pending bookings", err)
	}
	return bookings, nil
}
