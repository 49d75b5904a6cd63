// Package dicepool accumulates the evaluated rolls of a single request so
// the host's dice visualization sees every physical die exactly once.
package dicepool

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/roll-api/internal/roll"
)

// ShowDiceFunc is the side-effecting show-dice integration invoked on flush
type ShowDiceFunc func(ctx context.Context, results []*roll.Result) error

// Collection accumulates pending rolls for one request. A collection is
// owned by a single request and is not safe for concurrent use.
type Collection struct {
	results []*roll.Result
	show    ShowDiceFunc
	flushed bool
}

// New creates a collection. The show hook may be nil.
func New(show ShowDiceFunc) *Collection {
	return &Collection{show: show}
}

// Push appends evaluated results to the pool
func (c *Collection) Push(results ...*roll.Result) {
	c.results = append(c.results, results...)
}

// Len returns the number of pooled results
func (c *Collection) Len() int {
	return len(c.results)
}

// Results returns the pooled results in roll order
func (c *Collection) Results() []*roll.Result {
	return c.results
}

// Flush invokes the show-dice hook once with everything pooled so far.
// A second flush is a logged no-op. Aborted requests never call Flush, so
// their dice are discarded without being shown.
func (c *Collection) Flush(ctx context.Context) error {
	if c.flushed {
		slog.Debug("dice pool already flushed, skipping")
		return nil
	}
	c.flushed = true

	if c.show == nil || len(c.results) == 0 {
		return nil
	}
	return c.show(ctx, c.results)
}
