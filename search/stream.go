package search

import (
	"context"

	"github.com/katalvlaran/gridpath/grid"
)

// Event is one step of a streamed run together with a copy of every cell
// state taken right after the step, in row-major order.
type Event struct {
	Step   Step
	States []grid.State
}

// Report carries the terminal result of a streamed run.
type Report struct {
	Result Result
	Err    error
}

// Stream runs the search on its own goroutine and delivers one Event per
// step, in the order the steps happen. The events channel is unbuffered, so
// the run advances only as fast as the consumer receives; it is closed when
// the run ends, after which exactly one Report is sent on the second channel.
//
// Cancelling ctx stops the run at its next frontier poll with Outcome
// Cancelled; a nil ctx never cancels. Any OnStep hook in opts still runs before each Event is sent.
// g belongs to the run until the Report arrives; the consumer must read
// state from Event.States instead.
func Stream(ctx context.Context, kind Algorithm, g *grid.Grid, start, end grid.Position, opts ...Option) (<-chan Event, <-chan Report) {
	if ctx == nil {
		ctx = context.Background()
	}
	events := make(chan Event)
	report := make(chan Report, 1)

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	hook := o.OnStep

	send := func(s Step) {
		hook(s)
		ev := Event{Step: s, States: g.Snapshot()}
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	}
	all := append(append([]Option{}, opts...), WithOnStep(send), WithContext(ctx))

	go func() {
		res, err := Run(kind, g, start, end, all...)
		close(events)
		report <- Report{Result: res, Err: err}
		close(report)
	}()

	return events, report
}
