package cell

import (
	"context"
	"errors"

	"github.com/guiguan/caster"
)

// EventKind tells what happened to a cell.
type EventKind int

const (
	// Updated is sent after a holder changed the content of a cell.
	Updated EventKind = iota
	// Released is sent once the last holder of a cell let go of it.
	Released
)

func (k EventKind) String() string {
	switch k {
	case Updated:
		return "updated"
	case Released:
		return "released"
	}
	return "unknown"
}

// Event is broadcast by a Watcher. For Released events, Old and Value are
// both the final content of the cell.
type Event[V any] struct {
	Kind  EventKind
	Old   V
	Value V
}

// ErrWatcherClosed is returned when subscribing to a closed watcher.
var ErrWatcherClosed = errors.New("cell: watcher closed")

// Watcher broadcasts events of all the cells it observes to any number of
// subscribers. Subscribers have to drain their channels; a subscriber which
// stops reading will eventually block the holders mutating observed cells.
type Watcher[V any] struct {
	cast *caster.Caster
}

// NewWatcher creates a watcher which lives until ctx is done or Close is called.
func NewWatcher[V any](ctx context.Context) *Watcher[V] {
	return &Watcher[V]{cast: caster.New(ctx)}
}

// Subscribe returns a channel of events, buffered with capacity. The channel is
// closed when ctx is done or the watcher is closed.
func (w *Watcher[V]) Subscribe(ctx context.Context, capacity uint) (<-chan Event[V], error) {
	sub, ok := w.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrWatcherClosed
	}
	events := make(chan Event[V], capacity)
	go func() {
		defer close(events)
		for m := range sub {
			if ev, ok := m.(Event[V]); ok {
				events <- ev
			}
		}
	}()
	return events, nil
}

// Close stops the watcher and closes all subscriber channels.
func (w *Watcher[V]) Close() {
	w.cast.Close()
}

func (w *Watcher[V]) publish(ev Event[V]) {
	if !w.cast.Pub(ev) {
		tracer().Debugf("cell watcher closed, dropping %s event", ev.Kind)
	}
}
