package services

import (
	"context"
	"time"

	"unistay/commands"
	"unistay/dto"
	"unistay/errors"
	"unistay/models"
	"unistay/services/notification"
	"unistay/validator"
)

// BookingStep is one page of the booking form
type BookingStep interface {
	Number() int
	Title() string
	Validate(property *models.Property, form *dto.BookingForm) error
}

type personalStep struct{ v *validator.Validator }

func (s personalStep) Number() int   { return dto.StepPersonal }
func (s personalStep) Title() string { return "Personal Details" }

func (s personalStep) Validate(_ *models.Property, form *dto.BookingForm) error {
	return s.v.ValidateStep(dto.StepPersonal, form)
}

type bookingDetailsStep struct{ v *validator.Validator }

func (s bookingDetailsStep) Number() int   { return dto.StepBooking }
func (s bookingDetailsStep) Title() string { return "Booking Details" }

// Validate also requires the room type to be one of the listing's variants
func (s bookingDetailsStep) Validate(property *models.Property, form *dto.BookingForm) error {
	var fields []errors.FieldError
	if err := s.v.ValidateStep(dto.StepBooking, form); err != nil {
		appErr := errors.GetAppError(err)
		if appErr == nil {
			return err
		}
		fields = append(fields, appErr.Fields...)
	}
	if property != nil {
		if _, ok := property.FindRoom(form.Booking.RoomType); !ok {
			fields = append(fields, errors.FieldError{Field: "booking.roomType", Message: "is not offered by this property"})
		}
	}
	if len(fields) > 0 {
		return errors.NewValidationError("Please correct the highlighted fields", fields)
	}
	return nil
}

type paymentStep struct{ v *validator.Validator }

func (s paymentStep) Number() int   { return dto.StepPayment }
func (s paymentStep) Title() string { return "Payment" }

func (s paymentStep) Validate(_ *models.Property, form *dto.BookingForm) error {
	return s.v.ValidateStep(dto.StepPayment, form)
}

// NewBookingSteps returns the form steps in order
func NewBookingSteps(v *validator.Validator) []BookingStep {
	return []BookingStep{personalStep{v}, bookingDetailsStep{v}, paymentStep{v}}
}

// BookingProcess is the checkout sequence run after the form is valid
type BookingProcess interface {
	ValidateBooking(ctx context.Context) error
	ProcessPayment(ctx context.Context) error
	SendConfirmation(ctx context.Context) error
}

// StandardBooking charges the card after a simulated gateway delay
type StandardBooking struct {
	booking  *models.Booking
	payment  dto.PaymentDetails
	store    BookingStore
	notifier notification.Service
	delay    time.Duration
}

func NewStandardBooking(booking *models.Booking, payment dto.PaymentDetails, store BookingStore, notifier notification.Service, delay time.Duration) *StandardBooking {
	return &StandardBooking{
		booking:  booking,
		payment:  payment,
		store:    store,
		notifier: notifier,
		delay:    delay,
	}
}

func (b *StandardBooking) ValidateBooking(ctx context.Context) error {
	switch {
	case b.booking.UserID == 0:
		return errors.NewAppError(errors.ErrCodeInvalidOperation, "User ID is required", nil)
	case b.booking.PropertyID == "" || b.booking.RoomType == "":
		return errors.NewAppError(errors.ErrCodeInvalidOperation, "A property and room type are required", nil)
	case b.booking.TotalAmount <= 0:
		return errors.NewAppError(errors.ErrCodeInvalidOperation, "Booking total must be positive", nil)
	}
	return nil
}

// ProcessPayment leaves the booking pending when the card fails the checksum
func (b *StandardBooking) ProcessPayment(ctx context.Context) error {
	if err := sleepContext(ctx, b.delay); err != nil {
		return err
	}
	if !validator.LuhnValid(b.payment.CardNumber) {
		return errors.ErrPaymentFailed
	}
	return commands.NewPayBookingCommand(b.booking, b.store).Execute(ctx)
}

func (b *StandardBooking) SendConfirmation(ctx context.Context) error {
	return b.notifier.SendMessage(notification.NewMessageBuilder(b.booking).Completed().Build())
}
