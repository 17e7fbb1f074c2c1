package builders

import (
	"unistay/dto"
	"unistay/models"

	"github.com/google/uuid"
)

// BookingBuilder assembles a booking step by step
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder starts a pending booking with a fresh id
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			ID:            uuid.NewString(),
			PaymentStatus: models.PaymentStatusPending,
		},
	}
}

func (b *BookingBuilder) WithUser(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

func (b *BookingBuilder) WithProperty(property *models.Property) *BookingBuilder {
	b.booking.PropertyID = property.ID
	b.booking.PropertyName = property.Name
	return b
}

// WithQuote copies the room and the amounts of the quote
func (b *BookingBuilder) WithQuote(quote dto.BookingQuote) *BookingBuilder {
	b.booking.RoomType = quote.RoomType
	b.booking.Rent = quote.MonthlyRent
	b.booking.Deposit = quote.SecurityDeposit
	b.booking.AdminFee = quote.AdminFee
	b.booking.TotalAmount = quote.TotalAmount
	return b
}

func (b *BookingBuilder) WithGuestInfo(personal dto.PersonalDetails) *BookingBuilder {
	b.booking.GuestName = personal.FirstName + " " + personal.LastName
	b.booking.GuestEmail = personal.Email
	b.booking.GuestPhone = personal.Phone
	b.booking.Nationality = personal.Nationality
	return b
}

func (b *BookingBuilder) WithMoveIn(moveInDate string) *BookingBuilder {
	b.booking.MoveInDate = moveInDate
	return b
}

func (b *BookingBuilder) WithDuration(months int) *BookingBuilder {
	b.booking.DurationMonths = months
	return b
}

// WithCard keeps only the last four digits of the card
func (b *BookingBuilder) WithCard(cardNumber string) *BookingBuilder {
	if len(cardNumber) > 4 {
		cardNumber = cardNumber[len(cardNumber)-4:]
	}
	b.booking.CardLast4 = cardNumber
	return b
}

func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
