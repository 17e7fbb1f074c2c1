package validator

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"unistay/dto"
	"unistay/errors"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var (
	phoneRegex  = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
	cvvRegex    = regexp.MustCompile(`^[0-9]{3,4}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	digitsRegex = regexp.MustCompile(`^[0-9]{12,19}$`)
)

// Nationalities offered by the personal details step
var Nationalities = []string{"US", "UK", "CA", "AU", "IN", "CN", "DE", "FR", "other"}

// LeaseDurations offered by the booking details step, in months
var LeaseDurations = []int{6, 12, 24}

var fieldMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email address",
	"phone":       "must be a valid phone number",
	"isodate":     "must be a date in YYYY-MM-DD format",
	"pastdate":    "must be in the past",
	"notpastdate": "cannot be in the past",
	"nationality": "is not a supported nationality",
	"lease":       "must be 6, 12 or 24 months",
	"cardnumber":  "must contain 12 to 19 digits",
	"expiry":      "must be a future MM/YY date",
	"cvv":         "must be 3 or 4 digits",
}

// Validator wraps go-playground/validator with the booking form rules
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

var (
	defaultOnce sync.Once
	defaultV    *Validator
)

// Default returns the shared validator using wall clock time
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultV = New(time.Now)
	})
	return defaultV
}

// New builds a validator; now is injectable for date rules
func New(now func() time.Time) *Validator {
	val := &Validator{v: validator.New(), now: now}
	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = val.v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	_ = val.v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})
	_ = val.v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil && d.Before(val.today())
	})
	_ = val.v.RegisterValidation("notpastdate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil && !d.Before(val.today())
	})
	_ = val.v.RegisterValidation("nationality", func(fl validator.FieldLevel) bool {
		for _, n := range Nationalities {
			if fl.Field().String() == n {
				return true
			}
		}
		return false
	})
	_ = val.v.RegisterValidation("lease", func(fl validator.FieldLevel) bool {
		for _, m := range LeaseDurations {
			if int(fl.Field().Int()) == m {
				return true
			}
		}
		return false
	})
	_ = val.v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		return digitsRegex.MatchString(NormalizeCardNumber(fl.Field().String()))
	})
	_ = val.v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return val.validExpiry(fl.Field().String())
	})
	_ = val.v.RegisterValidation("cvv", func(fl validator.FieldLevel) bool {
		return cvvRegex.MatchString(fl.Field().String())
	})
	return val
}

func (val *Validator) today() time.Time {
	now := val.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// validExpiry accepts MM/YY cards that are still valid in the current month
func (val *Validator) validExpiry(s string) bool {
	m := expiryRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	year += 2000
	today := val.today()
	if year != today.Year() {
		return year > today.Year()
	}
	return month >= int(today.Month())
}

// ValidateStep validates one form step and returns a VALIDATION_ERROR with field errors
func (val *Validator) ValidateStep(step int, form *dto.BookingForm) error {
	var target interface{}
	var prefix string
	switch step {
	case dto.StepPersonal:
		target, prefix = &form.Personal, "personal."
	case dto.StepBooking:
		target, prefix = &form.Booking, "booking."
	case dto.StepPayment:
		target, prefix = &form.Payment, "payment."
	default:
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Unknown booking step "+strconv.Itoa(step), nil)
	}
	return val.validate(target, prefix)
}

// ValidateForm validates every step, collecting all field errors
func (val *Validator) ValidateForm(form *dto.BookingForm) error {
	var fields []errors.FieldError
	for _, step := range []int{dto.StepPersonal, dto.StepBooking, dto.StepPayment} {
		if err := val.ValidateStep(step, form); err != nil {
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

func (val *Validator) validate(target interface{}, prefix string) error {
	err := val.v.Struct(target)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid form", err)
	}
	fields := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		fields = append(fields, errors.FieldError{
			Field:   prefix + fe.Field(),
			Message: msg,
		})
	}
	return errors.NewValidationError("Please correct the highlighted fields", fields)
}

// NormalizeCardNumber strips spaces and dashes
func NormalizeCardNumber(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

// LuhnValid runs the mod 10 checksum used by the simulated payment step
func LuhnValid(number string) bool {
	number = NormalizeCardNumber(number)
	if !digitsRegex.MatchString(number) {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ParseDate parses the YYYY-MM-DD form dates
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
