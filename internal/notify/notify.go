package notify

import (
	"sync"
	"time"
)

// Variant selects how a notification is presented.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

func (v Variant) String() string {
	if v == VariantDestructive {
		return "destructive"
	}
	return "default"
}

// Notification is a transient message for the user.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
	At          time.Time
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(Notification)
}

// Func adapts a plain function to Notifier.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})

// Recorder keeps every notification it receives, in order.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns how many recorded notifications carry the given title.
func (r *Recorder) Count(title string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, item := range r.items {
		if item.Title == title {
			n++
		}
	}
	return n
}
