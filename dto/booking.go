package dto

import "unistay/models"

// Booking form steps
const (
	StepPersonal = 1
	StepBooking  = 2
	StepPayment  = 3
)

// DefaultLeaseMonths is preselected in the form
const DefaultLeaseMonths = 12

type PersonalDetails struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,phone"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,isodate,pastdate"`
	Nationality string `json:"nationality" validate:"required,nationality"`
}

type BookingDetails struct {
	RoomType      string `json:"roomType"`
	MoveInDate    string `json:"moveInDate" validate:"required,isodate,notpastdate"`
	LeaseDuration int    `json:"leaseDuration" validate:"required,lease"`
}

type PaymentDetails struct {
	CardholderName string `json:"cardholderName" validate:"required"`
	CardNumber     string `json:"cardNumber" validate:"required,cardnumber"`
	ExpiryDate     string `json:"expiryDate" validate:"required,expiry"`
	CVV            string `json:"cvv" validate:"required,cvv"`
	BillingAddress string `json:"billingAddress" validate:"required"`
	City           string `json:"city" validate:"required"`
	PostalCode     string `json:"postalCode" validate:"required"`
	Country        string `json:"country" validate:"required"`
}

// BookingForm is the three step booking form
type BookingForm struct {
	Personal PersonalDetails `json:"personal"`
	Booking  BookingDetails  `json:"booking"`
	Payment  PaymentDetails  `json:"payment"`
}

type CreateBookingRequest struct {
	PropertyID string      `json:"propertyId" binding:"required"`
	Form       BookingForm `json:"form"`
}

type ValidateStepRequest struct {
	PropertyID string      `json:"propertyId" binding:"required"`
	Step       int         `json:"step" binding:"required,min=1,max=3"`
	Form       BookingForm `json:"form"`
}

// StepResult acknowledges a valid form step
type StepResult struct {
	Step  int    `json:"step"`
	Title string `json:"title"`
	Valid bool   `json:"valid"`
}

// BookingQuote is the booking summary shown next to the form
type BookingQuote struct {
	RoomType        string  `json:"roomType"`
	WeeklyPrice     int     `json:"weeklyPrice"`
	Available       int     `json:"available"`
	MonthlyRent     float64 `json:"monthlyRent"`
	SecurityDeposit float64 `json:"securityDeposit"`
	AdminFee        float64 `json:"adminFee"`
	TotalAmount     float64 `json:"totalAmount"`
}

type BookingResponse struct {
	models.Booking
	Message string `json:"message,omitempty"`
}
