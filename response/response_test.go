package response

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"unistay/errors"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errors.NewValidationError("bad", nil), http.StatusBadRequest},
		{errors.NewAppError(errors.ErrCodeNotFound, "missing", nil), http.StatusNotFound},
		{errors.NewAppError(errors.ErrCodeUserExists, "dup", nil), http.StatusConflict},
		{errors.NewAppError(errors.ErrCodePaymentFailed, "declined", nil), http.StatusPaymentRequired},
		{errors.NewAppError(errors.ErrCodeUnauthorized, "nope", nil), http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", errors.ErrBookingNotFound), http.StatusNotFound},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusFor(tc.err); got != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestFailWritesFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, errors.NewValidationError("Please correct the highlighted fields", []errors.FieldError{{Field: "personal.email", Message: "is required"}}))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != 0 || len(body.Errors) != 1 || body.Errors[0].Field != "personal.email" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestFailHidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, fmt.Errorf("dial tcp: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Mess != "Server error" {
		t.Fatalf("unexpected message %q", body.Mess)
	}
}
