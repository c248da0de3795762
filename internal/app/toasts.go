package app

import (
	"time"

	"miner-radar.klederson.com/internal/notify"
	"miner-radar.klederson.com/internal/session"
)

// toastStack shows notifications as transient toasts. Each toast removes
// itself after ttl; the oldest are dropped beyond limit.
type toastStack struct {
	sched session.Scheduler
	ttl   time.Duration
	limit int

	seq   int
	items []toast
}

type toast struct {
	id int
	n  notify.Notification
}

func newToastStack(sched session.Scheduler, ttl time.Duration, limit int) *toastStack {
	return &toastStack{sched: sched, ttl: ttl, limit: limit}
}

func (s *toastStack) Notify(n notify.Notification) {
	s.seq++
	id := s.seq
	s.items = append(s.items, toast{id: id, n: n})
	if s.limit > 0 && len(s.items) > s.limit {
		s.items = s.items[len(s.items)-s.limit:]
	}
	s.sched.After(s.ttl, func() { s.dismiss(id) })
}

func (s *toastStack) dismiss(id int) {
	for i, t := range s.items {
		if t.id == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Visible returns the live notifications, newest last.
func (s *toastStack) Visible() []notify.Notification {
	out := make([]notify.Notification, len(s.items))
	for i, t := range s.items {
		out[i] = t.n
	}
	return out
}
