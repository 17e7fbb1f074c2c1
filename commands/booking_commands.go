package commands

import (
	"context"

	"unistay/models"
)

// BookingWriter is the storage the booking commands write through
type BookingWriter interface {
	Create(ctx context.Context, booking *models.Booking) error
	Update(ctx context.Context, booking *models.Booking) error
}

type BookingCommand interface {
	Execute(ctx context.Context) error
}

// CreateBookingCommand persists a new booking
type CreateBookingCommand struct {
	booking *models.Booking
	store   BookingWriter
}

func NewCreateBookingCommand(booking *models.Booking, store BookingWriter) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		store:   store,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	return c.store.Create(ctx, c.booking)
}

// PayBookingCommand moves a booking to paid through its state
type PayBookingCommand struct {
	booking *models.Booking
	store   BookingWriter
}

func NewPayBookingCommand(booking *models.Booking, store BookingWriter) *PayBookingCommand {
	return &PayBookingCommand{
		booking: booking,
		store:   store,
	}
}

func (c *PayBookingCommand) Execute(ctx context.Context) error {
	if err := models.GetBookingState(c.booking.PaymentStatus).Pay(c.booking); err != nil {
		return err
	}
	return c.store.Update(ctx, c.booking)
}

// CancelBookingCommand moves a booking to cancelled through its state
type CancelBookingCommand struct {
	booking *models.Booking
	store   BookingWriter
}

func NewCancelBookingCommand(booking *models.Booking, store BookingWriter) *CancelBookingCommand {
	return &CancelBookingCommand{
		booking: booking,
		store:   store,
	}
}

func (c *CancelBookingCommand) Execute(ctx context.Context) error {
	if err := models.GetBookingState(c.booking.PaymentStatus).Cancel(c.booking); err != nil {
		return err
	}
	return c.store.Update(ctx, c.booking)
}
