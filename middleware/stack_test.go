package middleware

import (
	"context"
	"reflect"
	"strings"
	"testing"
)

func newMock(name string, trace *[]string) Middleware {
	return MiddlewareFunc(name, func(ctx context.Context, input interface{}, next Handler) (interface{}, error) {
		*trace = append(*trace, name)
		return next.Handle(ctx, input)
	})
}

func TestStackOrder(t *testing.T) {
	var trace []string
	s := NewStack("test")

	steps := []struct {
		fn        func() error
		expectErr bool
	}{
		{fn: func() error { return s.Add(newMock("first", &trace), After) }},
		{fn: func() error { return s.Add(newMock("second", &trace), After) }},
		{fn: func() error { return s.Add(newMock("zero", &trace), Before) }},
		{fn: func() error { return s.Insert(newMock("between", &trace), "second", Before) }},
		{fn: func() error { return s.Insert(newMock("last", &trace), "second", After) }},
		{fn: func() error { return s.Add(newMock("first", &trace), After) }, expectErr: true},
		{fn: func() error { return s.Insert(newMock("other", &trace), "missing", After) }, expectErr: true},
		{fn: func() error { return s.Add(newMock("", &trace), After) }, expectErr: true},
	}
	for i, step := range steps {
		err := step.fn()
		if step.expectErr && err == nil {
			t.Fatalf("%d, expect error, got none", i)
		}
		if !step.expectErr && err != nil {
			t.Fatalf("%d, expect no error, got %v", i, err)
		}
	}

	expect := []string{"zero", "first", "between", "second", "last"}
	if e, a := expect, s.List(); !reflect.DeepEqual(e, a) {
		t.Errorf("expect %v order, got %v", e, a)
	}

	_, err := s.HandleMiddleware(context.Background(), nil, HandlerFunc(
		func(context.Context, interface{}) (interface{}, error) {
			trace = append(trace, "handler")
			return nil, nil
		}))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := append(expect, "handler"), trace; !reflect.DeepEqual(e, a) {
		t.Errorf("expect %v invocation, got %v", e, a)
	}

	if e, a := "test:\n\tzero\n", s.String(); !strings.HasPrefix(a, e) {
		t.Errorf("expect %q prefix, got %q", e, a)
	}
}

func TestStackSwapRemove(t *testing.T) {
	var trace []string
	s := NewStack("test")
	for _, name := range []string{"a", "b", "c"} {
		if err := s.Add(newMock(name, &trace), After); err != nil {
			t.Fatalf("expect no error, got %v", err)
		}
	}

	removed, err := s.Swap("b", newMock("B", &trace))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "b", removed.ID(); e != a {
		t.Errorf("expect %v swapped, got %v", e, a)
	}
	if _, ok := s.Get("b"); ok {
		t.Errorf("expect b to be gone")
	}
	if _, ok := s.Get("B"); !ok {
		t.Errorf("expect B to be present")
	}

	// swapping a middleware for one with the same ID is allowed.
	if _, err := s.Swap("B", newMock("B", &trace)); err != nil {
		t.Errorf("expect no error, got %v", err)
	}
	if _, err := s.Swap("B", newMock("a", &trace)); err == nil {
		t.Errorf("expect error swapping to an existing ID")
	}
	if _, err := s.Swap("missing", newMock("d", &trace)); err == nil {
		t.Errorf("expect error swapping a missing ID")
	}

	removed, err = s.Remove("a")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "a", removed.ID(); e != a {
		t.Errorf("expect %v removed, got %v", e, a)
	}
	if _, err := s.Remove("a"); err == nil {
		t.Errorf("expect error removing twice")
	}

	if e, a := []string{"B", "c"}, s.List(); !reflect.DeepEqual(e, a) {
		t.Errorf("expect %v order, got %v", e, a)
	}
}
