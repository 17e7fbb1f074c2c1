package services

import (
	"context"
	"math"
	"time"

	"unistay/builders"
	"unistay/commands"
	"unistay/dto"
	"unistay/errors"
	"unistay/models"
	"unistay/services/logger"
	"unistay/services/notification"
	"unistay/validator"
)

// AdminFee is charged once per booking
const AdminFee = 50.0

// BookingService runs the booking form, checkout and booking lifecycle
type BookingService struct {
	store        BookingStore
	search       *SearchService
	steps        []BookingStep
	notifier     notification.Service
	paymentDelay time.Duration
	now          func() time.Time
	logger       logger.Logger
}

type BookingServiceOptions struct {
	Store        BookingStore
	Search       *SearchService
	Validator    *validator.Validator
	Notifier     notification.Service
	PaymentDelay time.Duration
	Now          func() time.Time
	Logger       logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	if opts.Validator == nil {
		opts.Validator = validator.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = notification.NopService{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNopLogger()
	}
	return &BookingService{
		store:        opts.Store,
		search:       opts.Search,
		steps:        NewBookingSteps(opts.Validator),
		notifier:     opts.Notifier,
		paymentDelay: opts.PaymentDelay,
		now:          opts.Now,
		logger:       opts.Logger,
	}
}

func (s *BookingService) Steps() []BookingStep {
	return s.steps
}

// QuoteFor prices a room variant; unknown room types fall back to the first variant
func QuoteFor(property *models.Property, roomType string) (dto.BookingQuote, bool) {
	room, ok := property.FindRoom(roomType)
	if !ok {
		if len(property.RoomTypes) == 0 {
			return dto.BookingQuote{}, false
		}
		room = &property.RoomTypes[0]
	}
	monthly := round2(float64(room.Price) * models.WeeksPerMonth)
	return dto.BookingQuote{
		RoomType:        room.Type,
		WeeklyPrice:     room.Price,
		Available:       room.Available,
		MonthlyRent:     monthly,
		SecurityDeposit: monthly,
		AdminFee:        AdminFee,
		TotalAmount:     round2(monthly + monthly + AdminFee),
	}, true
}

// Quote prices a room of a catalog listing
func (s *BookingService) Quote(propertyID, roomType string) (dto.BookingQuote, error) {
	property, err := s.findProperty(propertyID)
	if err != nil {
		return dto.BookingQuote{}, err
	}
	quote, ok := QuoteFor(property, roomType)
	if !ok {
		return dto.BookingQuote{}, errors.NewAppError(errors.ErrCodeNotFound, "Property has no rooms", errors.ErrRoomNotFound)
	}
	return quote, nil
}

// ValidateStep checks one form page against the listing
func (s *BookingService) ValidateStep(ctx context.Context, propertyID string, step int, form *dto.BookingForm) (string, error) {
	property, err := s.findProperty(propertyID)
	if err != nil {
		return "", err
	}
	applyFormDefaults(property, form)
	for _, st := range s.steps {
		if st.Number() == step {
			return st.Title(), st.Validate(property, form)
		}
	}
	return "", errors.NewAppError(errors.ErrCodeInvalidFormat, "Unknown booking step", nil)
}

// Create validates the whole form, stores a pending booking and charges it.
// A declined card returns the pending booking together with a PAYMENT_FAILED error.
func (s *BookingService) Create(ctx context.Context, userID uint, req dto.CreateBookingRequest) (*models.Booking, error) {
	property, err := s.findProperty(req.PropertyID)
	if err != nil {
		return nil, err
	}
	form := req.Form
	applyFormDefaults(property, &form)

	if err := s.validateAll(property, &form); err != nil {
		return nil, err
	}

	room, _ := property.FindRoom(form.Booking.RoomType)
	if room.Available <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeRoomUnavailable, "Fully Booked", errors.ErrRoomNotAvailable)
	}
	quote, _ := QuoteFor(property, room.Type)

	booking := builders.NewBookingBuilder().
		WithUser(userID).
		WithProperty(property).
		WithQuote(quote).
		WithGuestInfo(form.Personal).
		WithMoveIn(form.Booking.MoveInDate).
		WithDuration(form.Booking.LeaseDuration).
		WithCard(validator.NormalizeCardNumber(form.Payment.CardNumber)).
		Build()
	booking.CreatedAt = s.now()

	process := NewStandardBooking(booking, form.Payment, s.store, s.notifier, s.paymentDelay)
	if err := process.ValidateBooking(ctx); err != nil {
		return nil, err
	}
	if err := commands.NewCreateBookingCommand(booking, s.store).Execute(ctx); err != nil {
		return nil, err
	}

	if err := process.ProcessPayment(ctx); err != nil {
		if errors.Is(err, errors.ErrPaymentFailed) {
			s.logger.Warn("Payment declined for booking %s", booking.ID)
			return booking, errors.NewAppError(errors.ErrCodePaymentFailed, "Payment was declined, please check your card details", err)
		}
		return booking, err
	}

	if err := process.SendConfirmation(ctx); err != nil {
		s.logger.Warn("Failed to send confirmation for booking %s: %v", booking.ID, err)
	}
	s.logger.Info("Booking %s paid by user %d for property %s", booking.ID, userID, property.ID)
	return booking, nil
}

// Cancel moves a pending or paid booking of the user to cancelled
func (s *BookingService) Cancel(ctx context.Context, userID uint, bookingID string) (*models.Booking, error) {
	booking, err := s.Get(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if err := commands.NewCancelBookingCommand(booking, s.store).Execute(ctx); err != nil {
		return nil, stateError(err)
	}
	if err := s.notifier.SendMessage(notification.NewMessageBuilder(booking).Cancelled().Build()); err != nil {
		s.logger.Warn("Failed to send cancellation for booking %s: %v", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.store.ListByUser(ctx, userID)
}

// Get returns a booking owned by the user; other users' bookings are reported missing
func (s *BookingService) Get(ctx context.Context, userID uint, bookingID string) (*models.Booking, error) {
	booking, err := s.store.Get(ctx, bookingID)
	if err != nil {
		if errors.Is(err, errors.ErrBookingNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Booking not found", err)
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Booking not found", errors.ErrBookingNotFound)
	}
	return booking, nil
}

// ExpirePending cancels pending bookings created more than olderThan ago
func (s *BookingService) ExpirePending(ctx context.Context, olderThan time.Duration) (int, error) {
	pending, err := s.store.ListPendingBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	expired := 0
	for i := range pending {
		if err := commands.NewCancelBookingCommand(&pending[i], s.store).Execute(ctx); err != nil {
			s.logger.Error("Failed to expire booking %s: %v", pending[i].ID, err)
			continue
		}
		expired++
	}
	if expired > 0 {
		s.logger.Info("Expired %d pending bookings", expired)
	}
	return expired, nil
}

func (s *BookingService) findProperty(id string) (*models.Property, error) {
	property, err := s.search.FindByID(id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNotFound, "Property not found", err)
	}
	return property, nil
}

func (s *BookingService) validateAll(property *models.Property, form *dto.BookingForm) error {
	var fields []errors.FieldError
	for _, st := range s.steps {
		if err := st.Validate(property, form); err != nil {
			appErr := errors.GetAppError(err)
			if appErr == nil {
				return err
			}
			fields = append(fields, appErr.Fields...)
		}
	}
	if len(fields) > 0 {
		return errors.NewValidationError("Please correct the highlighted fields", fields)
	}
	return nil
}

// applyFormDefaults preselects the first room variant and a 12 month lease
func applyFormDefaults(property *models.Property, form *dto.BookingForm) {
	if form.Booking.RoomType == "" && len(property.RoomTypes) > 0 {
		form.Booking.RoomType = property.RoomTypes[0].Type
	}
	if form.Booking.LeaseDuration == 0 {
		form.Booking.LeaseDuration = dto.DefaultLeaseMonths
	}
}

func stateError(err error) error {
	switch {
	case errors.Is(err, models.ErrBookingAlreadyCancelled),
		errors.Is(err, models.ErrBookingAlreadyPaid),
		errors.Is(err, models.ErrCannotPayCancelled):
		return errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), err)
	}
	return err
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
