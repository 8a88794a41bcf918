package kwargs

import (
	"errors"
	"testing"
)

// A small slot set used across the package tests.
const (
	slotCount Slot = iota
	slotName
	slotTags
)

type testCell struct {
	count int
	name  string
	tags  []string
}

type testLookup struct {
	Count *int
	Name  *string
	Tags  *[]string
}

func bindTest(l *testLookup, s Slot, c *testCell) {
	switch s {
	case slotCount:
		l.Count = &c.count
	case slotName:
		l.Name = &c.name
	case slotTags:
		l.Tags = &c.tags
	}
}

func count(v int) *Arg[testCell] {
	return New(slotCount, func(c *testCell) { c.count = v })
}

func name(v string) *Arg[testCell] {
	return New(slotName, func(c *testCell) { c.name = v })
}

func tags(v ...string) *Arg[testCell] {
	return New(slotTags, func(c *testCell) { c.tags = v })
}

func resolveTest(head *Arg[testCell]) testLookup {
	return Resolve(head, bindTest)
}

// requirePanicIs runs fn and fails unless it panics with an error matching
// target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %T: %v", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, err)
		}
	}()
	fn()
}
