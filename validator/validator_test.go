package validator

import (
	"testing"
	"time"

	"unistay/dto"
	"unistay/errors"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func validForm() dto.BookingForm {
	return dto.BookingForm{
		Personal: dto.PersonalDetails{
			FirstName:   "Sarah",
			LastName:    "Miller",
			Email:       "sarah@example.com",
			Phone:       "+44 7700 900123",
			DateOfBirth: "2003-05-01",
			Nationality: "UK",
		},
		Booking: dto.BookingDetails{
			RoomType:      "Studio",
			MoveInDate:    "2025-09-01",
			LeaseDuration: 12,
		},
		Payment: dto.PaymentDetails{
			CardholderName: "Sarah Miller",
			CardNumber:     "4242 4242 4242 4242",
			ExpiryDate:     "03/25",
			CVV:            "123",
			BillingAddress: "1 Main St",
			City:           "London",
			PostalCode:     "N1 9GU",
			Country:        "UK",
		},
	}
}

func fieldNames(t *testing.T, err error) map[string]bool {
	t.Helper()
	appErr := errors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrCodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
	names := make(map[string]bool)
	for _, f := range appErr.Fields {
		names[f.Field] = true
	}
	return names
}

func TestValidateFormAcceptsCompleteForm(t *testing.T) {
	v := New(fixedNow)
	form := validForm()
	if err := v.ValidateForm(&form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStepReportsFieldsWithJSONNames(t *testing.T) {
	v := New(fixedNow)
	form := validForm()
	form.Personal.Email = "not-an-email"
	form.Personal.Nationality = "XX"
	form.Personal.FirstName = ""

	names := fieldNames(t, v.ValidateStep(dto.StepPersonal, &form))
	for _, want := range []string{"personal.email", "personal.nationality", "personal.firstName"} {
		if !names[want] {
			t.Fatalf("expected field %s in %v", want, names)
		}
	}
	if err := v.ValidateStep(dto.StepPayment, &form); err != nil {
		t.Fatalf("payment step should be valid: %v", err)
	}
}

func TestBookingDetailsRules(t *testing.T) {
	v := New(fixedNow)
	cases := []struct {
		name    string
		mutate  func(*dto.BookingDetails)
		field   string
		wantErr bool
	}{
		{"valid", func(b *dto.BookingDetails) {}, "", false},
		{"move in today", func(b *dto.BookingDetails) { b.MoveInDate = "2025-03-15" }, "", false},
		{"move in past", func(b *dto.BookingDetails) { b.MoveInDate = "2025-03-14" }, "booking.moveInDate", true},
		{"bad date", func(b *dto.BookingDetails) { b.MoveInDate = "01/09/2025" }, "booking.moveInDate", true},
		{"lease 9", func(b *dto.BookingDetails) { b.LeaseDuration = 9 }, "booking.leaseDuration", true},
		{"lease 24", func(b *dto.BookingDetails) { b.LeaseDuration = 24 }, "", false},
	}
	for _, tc := range cases {
		form := validForm()
		tc.mutate(&form.Booking)
		err := v.ValidateStep(dto.StepBooking, &form)
		if !tc.wantErr {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !fieldNames(t, err)[tc.field] {
			t.Fatalf("%s: expected field %s", tc.name, tc.field)
		}
	}
}

func TestPaymentRules(t *testing.T) {
	v := New(fixedNow)
	form := validForm()
	form.Payment.ExpiryDate = "02/25"
	form.Payment.CVV = "12"
	form.Payment.CardNumber = "1234"

	names := fieldNames(t, v.ValidateStep(dto.StepPayment, &form))
	for _, want := range []string{"payment.expiryDate", "payment.cvv", "payment.cardNumber"} {
		if !names[want] {
			t.Fatalf("expected field %s in %v", want, names)
		}
	}
}

func TestValidateFormCollectsAllSteps(t *testing.T) {
	v := New(fixedNow)
	form := dto.BookingForm{}
	names := fieldNames(t, v.ValidateForm(&form))
	for _, want := range []string{"personal.email", "booking.moveInDate", "payment.cvv"} {
		if !names[want] {
			t.Fatalf("expected field %s in %v", want, names)
		}
	}
}

func TestUnknownStep(t *testing.T) {
	v := New(fixedNow)
	form := validForm()
	err := v.ValidateStep(4, &form)
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeInvalidFormat {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestLuhnValid(t *testing.T) {
	if !LuhnValid("4242 4242 4242 4242") {
		t.Fatalf("expected test visa number to pass")
	}
	if LuhnValid("4242 4242 4242 4241") {
		t.Fatalf("expected checksum failure")
	}
	if LuhnValid("abc") {
		t.Fatalf("expected non digits to fail")
	}
}
