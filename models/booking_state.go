package models

import "errors"

var (
	ErrBookingAlreadyPaid      = errors.New("booking already paid")
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")
	ErrCannotPayCancelled      = errors.New("cannot pay cancelled booking")
)

// BookingState defines the transitions allowed from a payment status
type BookingState interface {
	Pay(booking *Booking) error
	Cancel(booking *Booking) error
}

// PendingState waits for payment
type PendingState struct{}

func (s *PendingState) Pay(booking *Booking) error {
	booking.PaymentStatus = PaymentStatusPaid
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.PaymentStatus = PaymentStatusCancelled
	return nil
}

// PaidState has been charged
type PaidState struct{}

func (s *PaidState) Pay(booking *Booking) error {
	return ErrBookingAlreadyPaid
}

func (s *PaidState) Cancel(booking *Booking) error {
	booking.PaymentStatus = PaymentStatusCancelled
	return nil
}

// CancelledState is terminal
type CancelledState struct{}

func (s *CancelledState) Pay(booking *Booking) error {
	return ErrCannotPayCancelled
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return ErrBookingAlreadyCancelled
}

// GetBookingState returns the state for a payment status
func GetBookingState(status string) BookingState {
	switch status {
	case PaymentStatusPaid:
		return &PaidState{}
	case PaymentStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
