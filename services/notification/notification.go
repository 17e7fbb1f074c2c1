package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcasts to every websocket session of the hub
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// NopService drops messages
type NopService struct{}

func (NopService) SendMessage(string) error { return nil }

// RecorderService keeps messages in memory
type RecorderService struct {
	Messages []string
}

func (r *RecorderService) SendMessage(message string) error {
	r.Messages = append(r.Messages, message)
	return nil
}
