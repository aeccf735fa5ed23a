// Package session carries one-shot flash messages between a redirect and the
// page rendered after it.
package session

import (
	"context" // Request scoped cancellation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Kind tells the template how to style a message
type Kind string

// Flash kinds shown by the layout
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is one stored flash entry
type Message struct {
	Kind Kind   `json:"kind"` // success or error
	Text string `json:"text"` // User visible text
}

// Messages groups popped flashes by kind for rendering
type Messages struct {
	Success []string
	Error   []string
}

// Store persists flash messages per session id
type Store interface {
	Push(ctx context.Context, sessionID string, m Message) error
	Pop(ctx context.Context, sessionID string) ([]Message, error)
	Ping(ctx context.Context) error
}

// Flash is the per-request handle on the caller's session
type Flash struct {
	ctx       context.Context
	sessionID string
	store     Store
}

// New binds a session id and store to one request
func New(ctx context.Context, sessionID string, store Store) *Flash {
	return &Flash{ctx: ctx, sessionID: sessionID, store: store}
}

// SessionID returns the id the flashes are stored under
func (f *Flash) SessionID() string {
	return f.sessionID
}

// Success queues a success message for the next rendered page
func (f *Flash) Success(text string) {
	f.add(KindSuccess, text)
}

// Error queues an error message for the next rendered page
func (f *Flash) Error(text string) {
	f.add(KindError, text)
}

func (f *Flash) add(kind Kind, text string) {
	if f.store == nil {
		return
	}
	if err := f.store.Push(f.ctx, f.sessionID, Message{Kind: kind, Text: text}); err != nil {
		logrus.WithFields(logrus.Fields{
			"session": f.sessionID, // Session id
			"error":   err.Error(), // Error message
		}).Warn("Failed to store flash message")
	}
}

// Messages pops every queued message; a second call returns nothing
func (f *Flash) Messages() Messages {
	var out Messages
	if f.store == nil {
		return out
	}
	msgs, err := f.store.Pop(f.ctx, f.sessionID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"session": f.sessionID, // Session id
			"error":   err.Error(), // Error message
		}).Warn("Failed to read flash messages")
		return out
	}
	for _, m := range msgs {
		switch m.Kind {
		case KindSuccess:
			out.Success = append(out.Success, m.Text)
		case KindError:
			out.Error = append(out.Error, m.Text)
		}
	}
	return out
}

const contextKey = "flash"

// Attach stores f on the gin context
func Attach(c *gin.Context, f *Flash) {
	c.Set(contextKey, f)
}

// FromContext returns the request's Flash, or a handle that drops everything
// when no session middleware ran.
func FromContext(c *gin.Context) *Flash {
	if v, ok := c.Get(contextKey); ok {
		if f, ok := v.(*Flash); ok {
			return f
		}
	}
	return &Flash{ctx: c.Request.Context()}
}
