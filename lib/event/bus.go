package event

import (
	"sync"
	"time"

	"careers-backend/models"
	log "github.com/sirupsen/logrus"
)

type Code string

const (
	ApplicationReceived      Code = "application.received"
	ApplicationStatusChanged Code = "application.status_changed"
	PositionPublished        Code = "position.published"
)

type Event struct {
	Code    Code
	At      time.Time
	Payload interface{}
}

type ApplicationPayload struct {
	ApplicationID string
	UserID        string
	JobID         string
	JobName       string
	Email         string
	OldStatus     models.ApplicationStatus
	NewStatus     models.ApplicationStatus
}

type PositionPayload struct {
	PositionID string
	Name       string
}

type Handler func(e Event)

// Bus is a typed in-process publish/subscribe dispatcher. Subscriptions are
// registered at startup; Publish runs handlers synchronously in
// registration order within the calling request.
type Bus interface {
	Publish(code Code, payload interface{})
	Subscribe(code Code, h Handler)
}

var Instance Bus

func Init() {
	Instance = NewBus()
}

func NewBus() Bus {
	return &bus{
		handlers: map[Code][]Handler{},
	}
}

type bus struct {
	mu       sync.RWMutex
	handlers map[Code][]Handler
}

func (b *bus) Subscribe(code Code, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[code] = append(b.handlers[code], h)
}

func (b *bus) Publish(code Code, payload interface{}) {
	b.mu.RLock()
	list := b.handlers[code]
	b.mu.RUnlock()
	e := Event{
		Code:    code,
		At:      time.Now(),
		Payload: payload,
	}
	for _, h := range list {
		b.dispatch(h, e)
	}
}

// a misbehaving subscriber must not break the publishing request
func (b *bus) dispatch(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("event_code", string(e.Code)).
				Errorf("event handler panic recover: %v", r)
		}
	}()
	h(e)
}
