package models

import (
	"time"
)

// Payment status constants
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusCancelled = "cancelled"
)

// Booking is a reservation of one room variant of a listing
type Booking struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         uint      `json:"userId" gorm:"index"`
	PropertyID     string    `json:"propertyId"`
	PropertyName   string    `json:"propertyName"`
	RoomType       string    `json:"roomType"`
	Rent           float64   `json:"rent"` // monthly
	Deposit        float64   `json:"deposit"`
	AdminFee       float64   `json:"adminFee"`
	TotalAmount    float64   `json:"totalAmount"`
	DurationMonths int       `json:"durationMonths"`
	PaymentStatus  string    `json:"paymentStatus" gorm:"index"`
	GuestName      string    `json:"guestName"`
	GuestEmail     string    `json:"guestEmail"`
	GuestPhone     string    `json:"guestPhone"`
	Nationality    string    `json:"nationality"`
	CardLast4      string    `json:"cardLast4"`
	MoveInDate     string    `json:"moveInDate"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
