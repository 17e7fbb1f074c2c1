package notification

import (
	"strings"
	"testing"

	"unistay/models"

	"github.com/goccy/go-json"
)

func TestMessageBuilderCompleted(t *testing.T) {
	booking := &models.Booking{ID: "b1", UserID: 3, PropertyID: "0-1", PaymentStatus: models.PaymentStatusPaid, TotalAmount: 120.5}
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(NewMessageBuilder(booking).Completed().Build()), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["event"] != "booking.completed" || decoded["message"] != BookingCompletedText {
		t.Fatalf("unexpected payload %v", decoded)
	}
	if decoded["bookingId"] != "b1" || decoded["status"] != "paid" {
		t.Fatalf("unexpected booking fields %v", decoded)
	}
}

func TestMessageBuilderCancelled(t *testing.T) {
	booking := &models.Booking{ID: "b2", PropertyName: "Urban Nest Leeds"}
	msg := NewMessageBuilder(booking).Cancelled().Build()
	if !strings.Contains(msg, "Urban Nest Leeds") || !strings.Contains(msg, "booking.cancelled") {
		t.Fatalf("unexpected message %s", msg)
	}
}

func TestMelodyServiceWithoutHub(t *testing.T) {
	if err := NewMelodyService(nil).SendMessage("hi"); err == nil {
		t.Fatalf("expected error without hub")
	}
	var rec RecorderService
	_ = rec.SendMessage("hi")
	if len(rec.Messages) != 1 {
		t.Fatalf("expected recorded message")
	}
}
