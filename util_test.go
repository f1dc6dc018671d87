package quadpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

type quadIter interface {
	Next() (curve.QuadBez, bool)
}

func drain(it quadIter) []curve.QuadBez {
	var out []curve.QuadBez
	for q, ok := it.Next(); ok; q, ok = it.Next() {
		out = append(out, q)
	}
	return out
}
