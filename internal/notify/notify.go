// Package notify carries user-facing outcome messages of domain operations.
package notify

import (
	"context"
	"log/slog"
	"time"
)

// Variant selects how a notification is presented.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is one success or failure message.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     Variant   `json:"variant"`
	Time        time.Time `json:"time"`
}

// Success builds a default-variant notification.
func Success(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDefault}
}

// Failure builds a destructive-variant notification.
func Failure(title, description string) Notification {
	return Notification{Title: title, Description: description, Variant: VariantDestructive}
}

// Notifier receives notifications.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Multi dispatches notifications to multiple notifiers.
type Multi struct {
	notifiers []Notifier
}

// NewMulti constructs a Multi, skipping nil notifiers.
func NewMulti(notifiers ...Notifier) *Multi {
	m := &Multi{}
	for _, n := range notifiers {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Notify stamps the notification time if unset and forwards it to all notifiers.
func (m *Multi) Notify(ctx context.Context, n Notification) {
	if m == nil {
		return
	}
	if n.Time.IsZero() {
		n.Time = time.Now().UTC()
	}
	for _, notifier := range m.notifiers {
		notifier.Notify(ctx, n)
	}
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("component", "notify")}
}

func (l *LogNotifier) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo
	if n.Variant == VariantDestructive {
		level = slog.LevelWarn
	}
	l.log.Log(ctx, level, "notification",
		slog.String("title", n.Title),
		slog.String("description", n.Description),
		slog.String("variant", string(n.Variant)),
	)
}

// Discard drops every notification.
type Discard struct{}

func (Discard) Notify(context.Context, Notification) {}
