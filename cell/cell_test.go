package cell

import (
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCellSharedMutation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	c := New(4)
	other := c.Share()
	if c.RefCount() != 2 {
		t.Fatalf("expected 2 holders, have %d", c.RefCount())
	}
	other.Set(45)
	if c.Get() != 45 {
		t.Errorf("expected mutation to be visible through every handle, got %d", c.Get())
	}
	c.Update(func(v int) int { return v + 1 })
	if other.Get() != 46 {
		t.Errorf("expected 46 after update, got %d", other.Get())
	}
}

func TestCellReleaseLastHolder(t *testing.T) {
	c := New("x")
	c.Retain()
	c.Release()
	if c.IsReleased() {
		t.Fatalf("cell released while still held")
	}
	if c.RefCount() != 1 {
		t.Errorf("expected 1 holder, have %d", c.RefCount())
	}
	c.Release()
	if !c.IsReleased() || c.RefCount() != 0 {
		t.Errorf("expected cell to be released, refs=%d", c.RefCount())
	}
}

func TestCellRetainAfterReleasePanics(t *testing.T) {
	c := New(1)
	c.Release()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected retain of released cell to panic")
		}
	}()
	c.Retain()
}

func TestCellCompareIsLive(t *testing.T) {
	a, b := New(3), New(5)
	if a.Compare(b) >= 0 {
		t.Errorf("expected 3 < 5")
	}
	a.Set(7)
	if a.Compare(b) <= 0 {
		t.Errorf("expected 7 > 5 after in-place update")
	}
	if a.Compare(a) != 0 {
		t.Errorf("expected a cell to equal itself")
	}
	b.Set(7)
	if a.Compare(b) != 0 {
		t.Errorf("expected equal contents to compare as 0")
	}
}

func TestCellConcurrentHolders(t *testing.T) {
	c := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := c.Share()
			h.Update(func(v int) int { return v + 1 })
			h.Release()
		}()
	}
	wg.Wait()
	if c.Get() != 16 {
		t.Errorf("expected 16 increments, got %d", c.Get())
	}
	if c.RefCount() != 1 {
		t.Errorf("expected only the creator to hold the cell, refs=%d", c.RefCount())
	}
}

func TestCellString(t *testing.T) {
	if s := New(45).String(); s != "Cell(45)" {
		t.Errorf("unexpected string %q", s)
	}
}
