package main

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// virtualClock replaces tea.Tick in tests. Scheduled messages are queued
// and delivered in time order by runUntil, so no test sleeps.
type virtualClock struct {
	now     time.Duration
	seq     int
	pending []timerMsg
}

type timerMsg struct {
	at  time.Duration
	seq int
	msg tea.Msg
}

func (c *virtualClock) schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	c.seq++
	t := timerMsg{at: c.now + d, seq: c.seq, msg: msg}
	return func() tea.Msg { return t }
}

// enqueue runs cmd and queues every timer it produced. Any other message
// is returned to the caller.
func (c *virtualClock) enqueue(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case timerMsg:
		c.pending = append(c.pending, msg)
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, sub := range msg {
			out = append(out, c.enqueue(sub)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// pop removes the earliest timer due at or before deadline.
func (c *virtualClock) pop(deadline time.Duration) (tea.Msg, bool) {
	if len(c.pending) == 0 {
		return nil, false
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].at != c.pending[j].at {
			return c.pending[i].at < c.pending[j].at
		}
		return c.pending[i].seq < c.pending[j].seq
	})
	t := c.pending[0]
	if t.at > deadline {
		return nil, false
	}
	c.pending = c.pending[1:]
	c.now = t.at
	return t.msg, true
}

// runUntil delivers every timer due by deadline to update, queuing the
// commands it returns, and leaves the clock at deadline.
func (c *virtualClock) runUntil(deadline time.Duration, update func(tea.Msg) tea.Cmd) {
	for {
		msg, ok := c.pop(deadline)
		if !ok {
			break
		}
		c.enqueue(update(msg))
	}
	if deadline > c.now {
		c.now = deadline
	}
}

// drain delivers timers until none are left, up to limit deliveries.
func (c *virtualClock) drain(limit int, update func(tea.Msg) tea.Cmd) int {
	n := 0
	for ; n < limit; n++ {
		msg, ok := c.pop(1<<62 - 1)
		if !ok {
			break
		}
		c.enqueue(update(msg))
	}
	return n
}
