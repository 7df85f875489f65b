package refine

import (
	"context"
	"time"

	"promptforge-api/pkg/logger"
)

// State 精炼流水线状态
type State string

const (
	StateIdle             State = "idle"
	StateAnalyzing        State = "analyzing"
	StateQuestionsPending State = "questions_pending"
	StateRefining         State = "refining"
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// Transition 一次状态迁移记录
type Transition struct {
	From State
	To   State
	At   time.Time
}

// Run 单次请求的状态机，不跨请求共享
type Run struct {
	state       State
	transitions []Transition
	err         error
}

func newRun() *Run {
	return &Run{state: StateIdle}
}

// State 返回当前状态
func (r *Run) State() State {
	return r.state
}

// Transitions 返回已发生的迁移
func (r *Run) Transitions() []Transition {
	return append([]Transition(nil), r.transitions...)
}

// Err 返回导致 Failed 的错误
func (r *Run) Err() error {
	return r.err
}

// Path 返回依次经过的状态（含起始状态）
func (r *Run) Path() []State {
	path := make([]State, 0, len(r.transitions)+1)
	path = append(path, StateIdle)
	for _, t := range r.transitions {
		path = append(path, t.To)
	}
	return path
}

func (r *Run) to(ctx context.Context, next State) {
	t := Transition{From: r.state, To: next, At: time.Now()}
	r.transitions = append(r.transitions, t)
	r.state = next
	logger.Debug(ctx, "refine state transition", "from", string(t.From), "to", string(t.To))
}

func (r *Run) fail(ctx context.Context, err error) error {
	r.err = err
	r.to(ctx, StateFailed)
	return err
}
