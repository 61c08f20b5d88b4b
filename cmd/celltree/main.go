/*
Command celltree walks through the life of a small tree of shared cells.

It builds a tree rooted at 4, inserts 3, 5 and 1, changes the root's content
in place, cuts off the children of 3 and finally lets go of the cell holding
1, narrating the holder counts of every cell along the way.

Usage:

	celltree [--dot] [--debug] [--no-color]

With --dot, tree snapshots are written in Graphviz DOT format instead of as
indented text.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/npillmayer/celltree"
	"github.com/npillmayer/celltree/cell"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func main() {
	app := &cli.App{
		Name:  "celltree",
		Usage: "walk through a tree of shared cells",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dot",
				Usage: "print tree snapshots in Graphviz DOT format",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug tracing",
				EnvVars: []string{"CELLTREE_DEBUG"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "disable colored output",
				EnvVars: []string{"NO_COLOR"},
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	gtrace.CoreTracer = gologadapter.New()
	if cctx.Bool("debug") {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
	plain := cctx.Bool("no-color") || !term.IsTerminal(int(os.Stdout.Fd()))
	n := newNarrator(os.Stdout, !plain)
	n.dot = cctx.Bool("dot")
	return scenario(cctx.Context, n)
}

// scenario plays the walk-through. All holder counts printed include the
// handles in elems, which the caller keeps until the end.
func scenario(ctx context.Context, n *narrator) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	watcher := cell.NewWatcher[int](ctx)
	defer watcher.Close()
	events, err := watcher.Subscribe(ctx, 8)
	if err != nil {
		return err
	}
	v1, v2, v3, v4 := cell.New(4), cell.New(3), cell.New(5), cell.New(1)
	elems := []*cell.Cell[int]{v1.Share(), v2.Share(), v3.Share(), v4.Share()}
	for _, e := range elems {
		e.Observe(watcher)
	}
	tree := celltree.New(elems[0])
	for _, e := range elems[1:] {
		tree.Insert(e)
	}
	handles := func() []namedCell {
		return []namedCell{
			{"v1", v1}, {"v2", v2}, {"v3", v3}, {"v4", v4},
			{"elems[0]", elems[0]}, {"elems[1]", elems[1]},
			{"elems[2]", elems[2]}, {"elems[3]", elems[3]},
		}
	}
	n.section("tree after inserting 3, 5, 1 below 4")
	n.tree(tree)
	n.value("root", tree.Get())

	tree.Get().Set(45)
	if err := n.event(ctx, events); err != nil {
		return err
	}
	n.value("root (after update)", tree.Get())
	if err := tree.Check(); err != nil {
		n.note(err.Error())
	}
	n.counts(handles())

	n.section("removing children of v2")
	if tree.RemoveChildrenOf(v2) {
		n.note(fmt.Sprintf("removed children of %v", v2))
	} else {
		n.note(fmt.Sprintf("could not find %v", v2))
	}
	n.tree(tree)
	n.counts(handles())

	n.section("re-assigning v4 a new cell")
	elems[3].Release()
	v4.Release()
	v4 = cell.New(10)
	if err := n.event(ctx, events); err != nil {
		return err
	}
	n.counts(handles())
	return nil
}

// event narrates the next cell event, waiting at most a second for it.
func (n *narrator) event(ctx context.Context, events <-chan cell.Event[int]) error {
	select {
	case ev, ok := <-events:
		if !ok {
			return cell.ErrWatcherClosed
		}
		if ev.Kind == cell.Released {
			n.note(fmt.Sprintf("cell %d released", ev.Value))
		} else {
			n.note(fmt.Sprintf("cell %s: %d → %d", ev.Kind, ev.Old, ev.Value))
		}
		return nil
	case <-time.After(time.Second):
		return fmt.Errorf("no cell event within a second")
	case <-ctx.Done():
		return ctx.Err()
	}
}
