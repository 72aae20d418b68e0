package spline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// equateVecs compares vectors by dimension and components, which cmp can't
// see by itself.
var equateVecs = cmp.Comparer(func(a, b VecN) bool { return a.Equal(b) })

var equateCubics = cmp.Comparer(func(a, b CubicBez) bool {
	for i := range a.pts {
		if !a.pts[i].Equal(b.pts[i]) {
			return false
		}
	}
	return true
})

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// wantPanic calls fn and checks that it panics with an error matching target.
func wantPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("expected panic wrapping %v", target)
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Errorf("got panic %v, want one wrapping %v", r, target)
		}
	}()
	fn()
}

func wantError(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("got error %v, want %v", err, target)
	}
}
