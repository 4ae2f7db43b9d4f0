// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import (
	"syscall"

	"github.com/eapache/queue"
)

// Step is one scripted raw-call result.
type Step struct {
	N     int
	Errno syscall.Errno
}

// CallScript replays a fixed sequence of raw-call results in FIFO order.
// Draining past the script yields success with a zero count.
type CallScript struct {
	steps *queue.Queue
	calls int
}

// NewCallScript returns an empty script.
func NewCallScript() *CallScript {
	return &CallScript{steps: queue.New()}
}

// Push appends one scripted result.
func (s *CallScript) Push(n int, errno syscall.Errno) *CallScript {
	s.steps.Add(Step{N: n, Errno: errno})
	return s
}

// Next pops and returns the next scripted result. It has the same shape as
// an invocation-core thunk and is passed to sys.Invoke directly.
func (s *CallScript) Next() (int, syscall.Errno) {
	s.calls++
	if s.steps.Length() == 0 {
		return 0, 0
	}
	st := s.steps.Remove().(Step)
	return st.N, st.Errno
}

// Calls reports how many times the script was invoked.
func (s *CallScript) Calls() int {
	return s.calls
}

// Remaining reports how many scripted steps are left.
func (s *CallScript) Remaining() int {
	return s.steps.Length()
}
