package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdScheduler queues delayed callbacks until Update turns them into tick
// commands. The callbacks come back as runMsg and run on the event loop.
type cmdScheduler struct {
	queued []queuedTask
}

type queuedTask struct {
	delay time.Duration
	fn    func()
}

func (s *cmdScheduler) After(d time.Duration, fn func()) {
	s.queued = append(s.queued, queuedTask{delay: d, fn: fn})
}

// Drain returns one command per queued callback and empties the queue.
func (s *cmdScheduler) Drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(s.queued))
	for _, task := range s.queued {
		cmds = append(cmds, tea.Tick(task.delay, func(time.Time) tea.Msg {
			return runMsg{fn: task.fn}
		}))
	}
	s.queued = nil
	return tea.Batch(cmds...)
}

// Len returns the number of callbacks waiting to be drained.
func (s *cmdScheduler) Len() int {
	return len(s.queued)
}
