package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/celltree"
	"github.com/npillmayer/celltree/cell"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

type namedCell struct {
	name string
	cell *cell.Cell[int]
}

// narrator writes the walk-through to a console. Colors are switched off for
// non-interactive output.
type narrator struct {
	w       io.Writer
	dot     bool
	context *uax11.Context
	head    *color.Color
	label   *color.Color
	gone    *color.Color
}

func newNarrator(w io.Writer, colored bool) *narrator {
	grapheme.SetupGraphemeClasses()
	n := &narrator{
		w:       w,
		context: uax11.ContextFromEnvironment(),
		head:    color.New(color.FgBlue, color.Bold),
		label:   color.New(color.FgCyan),
		gone:    color.New(color.FgRed),
	}
	if !colored {
		n.head.DisableColor()
		n.label.DisableColor()
		n.gone.DisableColor()
	}
	return n
}

func (n *narrator) section(title string) {
	fmt.Fprintln(n.w)
	n.head.Fprintf(n.w, "== %s\n", title)
}

func (n *narrator) note(s string) {
	fmt.Fprintf(n.w, "   %s\n", s)
}

func (n *narrator) value(name string, c *cell.Cell[int]) {
	n.label.Fprintf(n.w, "%s:", name)
	fmt.Fprintf(n.w, " %v\n", c)
}

func (n *narrator) tree(root *celltree.Node[*cell.Cell[int]]) {
	if n.dot {
		root.ToDot(n.w)
		return
	}
	io.WriteString(n.w, root.String())
}

// counts prints the holder count of every cell, names right-aligned by their
// display width.
func (n *narrator) counts(cells []namedCell) {
	width := 0
	for _, c := range cells {
		width = max(width, n.width(c.name))
	}
	for _, c := range cells {
		pad := strings.Repeat(" ", width-n.width(c.name))
		n.label.Fprintf(n.w, "rc-count %s%s:", pad, c.name)
		if c.cell.IsReleased() {
			n.gone.Fprintf(n.w, " released\n")
			continue
		}
		fmt.Fprintf(n.w, " %d\n", c.cell.RefCount())
	}
}

func (n *narrator) width(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), n.context)
}
