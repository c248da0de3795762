package session

import (
	"sort"
	"time"
)

// ManualScheduler is a Scheduler driven by an explicit clock. Callbacks run
// synchronously inside Advance, in due order.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []manualTask
}

type manualTask struct {
	due time.Duration
	seq int
	fn  func()
}

// After schedules fn to run once the clock has advanced by d.
func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.tasks = append(s.tasks, manualTask{due: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves the clock forward by d and runs every task that became due.
// Tasks scheduled by a running callback are picked up if they fall within
// the same window.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		sort.SliceStable(s.tasks, func(i, j int) bool {
			if s.tasks[i].due != s.tasks[j].due {
				return s.tasks[i].due < s.tasks[j].due
			}
			return s.tasks[i].seq < s.tasks[j].seq
		})
		if len(s.tasks) == 0 || s.tasks[0].due > target {
			break
		}

		task := s.tasks[0]
		s.tasks = s.tasks[1:]
		s.now = task.due
		task.fn()
	}
	s.now = target
}

// Len returns the number of tasks still waiting.
func (s *ManualScheduler) Len() int {
	return len(s.tasks)
}
