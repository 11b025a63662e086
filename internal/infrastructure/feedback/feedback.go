// Package feedback holds the notification and navigation adapters used by the
// rating flow when it runs behind the HTTP gateway.
package feedback

import (
	"sync"

	"github.com/stayinn/rating-gateway/internal/core/ports"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is one transient message for the guest.
type Toast struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Recorder collects the toasts and the navigation requested while serving a
// single request so the handler can render them into the response.
type Recorder struct {
	mu       sync.Mutex
	toasts   []Toast
	navigate *string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(message string) {
	r.add(Toast{Level: LevelSuccess, Message: message})
}

func (r *Recorder) Error(message string) {
	r.add(Toast{Level: LevelError, Message: message})
}

func (r *Recorder) add(t Toast) {
	r.mu.Lock()
	r.toasts = append(r.toasts, t)
	r.mu.Unlock()
}

// NavigateTo keeps the last requested path.
func (r *Recorder) NavigateTo(path string) {
	r.mu.Lock()
	r.navigate = &path
	r.mu.Unlock()
}

// Toasts returns a copy of the recorded toasts, never nil.
func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Toast, len(r.toasts))
	copy(out, r.toasts)
	return out
}

// Navigation returns the requested path and whether navigation was requested.
func (r *Recorder) Navigation() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.navigate == nil {
		return "", false
	}
	return *r.navigate, true
}

// Replay re-sends recorded toasts to n in their original order.
func Replay(n ports.Notifier, toasts []Toast) {
	for _, t := range toasts {
		switch t.Level {
		case LevelSuccess:
			n.Success(t.Message)
		case LevelError:
			n.Error(t.Message)
		}
	}
}
