package notification

import (
	"fmt"

	"unistay/models"

	"github.com/goccy/go-json"
)

// BookingCompletedText is shown to the student after a successful payment
const BookingCompletedText = "Booking completed successfully! You will receive a confirmation email shortly."

type bookingMessage struct {
	Event      string  `json:"event"`
	Message    string  `json:"message"`
	BookingID  string  `json:"bookingId"`
	UserID     uint    `json:"userId"`
	PropertyID string  `json:"propertyId"`
	Status     string  `json:"status"`
	Total      float64 `json:"totalAmount"`
}

// MessageBuilder renders booking events for the websocket hub
type MessageBuilder struct {
	event   string
	text    string
	booking *models.Booking
}

func NewMessageBuilder(booking *models.Booking) *MessageBuilder {
	return &MessageBuilder{booking: booking}
}

func (b *MessageBuilder) Completed() *MessageBuilder {
	b.event = "booking.completed"
	b.text = BookingCompletedText
	return b
}

func (b *MessageBuilder) Cancelled() *MessageBuilder {
	b.event = "booking.cancelled"
	b.text = fmt.Sprintf("Booking %s for %s has been cancelled.", b.booking.ID, b.booking.PropertyName)
	return b
}

func (b *MessageBuilder) Build() string {
	payload, err := json.Marshal(bookingMessage{
		Event:      b.event,
		Message:    b.text,
		BookingID:  b.booking.ID,
		UserID:     b.booking.UserID,
		PropertyID: b.booking.PropertyID,
		Status:     b.booking.PaymentStatus,
		Total:      b.booking.TotalAmount,
	})
	if err != nil {
		return b.text
	}
	return string(payload)
}
