package render

import (
	"context"
	"strings"
	"testing"

	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

func intArray(vals ...uint32) *value.Value {
	elem := typeinfo.NewInt("int", 4, false)
	arr := typeinfo.NewArray(elem, int64(len(vals)))
	buf := make([]byte, 0, len(vals)*4)
	for _, v := range vals {
		buf = append(buf, le32(v)...)
	}
	return value.FromContents(arr, buf)
}

func TestRenderArray(t *testing.T) {
	v := intArray(1, 2, 3)
	got := renderValue(t, newCtx(), v)
	if got != "{1, 2, 3}" {
		t.Errorf("array = %q, want {1, 2, 3}", got)
	}
}

func TestRenderArrayRepeats(t *testing.T) {
	vals := make([]uint32, 0, 13)
	for i := 0; i < 12; i++ {
		vals = append(vals, 9)
	}
	vals = append(vals, 5)
	v := intArray(vals...)
	got := renderValue(t, newCtx(), v)
	if got != "{9 <repeats 12 times>, 5}" {
		t.Errorf("array = %q, want {9 <repeats 12 times>, 5}", got)
	}
}

func TestRenderArrayRepeatsAtThreshold(t *testing.T) {
	// A run equal to the threshold prints element by element.
	vals := make([]uint32, 10)
	for i := range vals {
		vals[i] = 7
	}
	v := intArray(vals...)
	got := renderValue(t, newCtx(), v)
	if strings.Contains(got, "repeats") {
		t.Errorf("array = %q, run at threshold must not collapse", got)
	}
}

func TestRenderArrayMaxElements(t *testing.T) {
	v := intArray(1, 2, 3, 4, 5, 6)
	c := newCtx()
	c.Opts.MaxElements = 3
	got := renderValue(t, c, v)
	if got != "{1, 2, 3...}" {
		t.Errorf("array = %q, want {1, 2, 3...}", got)
	}
}

func TestRenderArrayIndexes(t *testing.T) {
	v := intArray(10, 20)
	c := newCtx()
	c.Opts.PrintIndexes = true
	got := renderValue(t, c, v)
	if got != "{[0] = 10, [1] = 20}" {
		t.Errorf("array = %q, want {[0] = 10, [1] = 20}", got)
	}
}

func TestRenderArrayPretty(t *testing.T) {
	v := intArray(1, 2)
	c := newCtx()
	c.Opts.PrettyArrays = true
	got := renderValue(t, c, v)
	want := "{\n  1, \n  2\n}"
	if got != want {
		t.Errorf("pretty array = %q, want %q", got, want)
	}
}

func TestRenderArrayEnumIndexed(t *testing.T) {
	elem := typeinfo.NewInt("int", 4, false)
	idx := typeinfo.NewEnum("axis", 4, []typeinfo.Field{
		{Name: "X", EnumVal: 10},
		{Name: "Y", EnumVal: 20},
	})
	arr := typeinfo.NewArrayIndexed(elem, idx)
	v := value.FromContents(arr, append(le32(1), le32(2)...))
	c := newCtx()
	c.Opts.PrintIndexes = true
	got := renderValue(t, c, v)
	// Enum-indexed arrays have one slot per literal position, labeled
	// with the literal, regardless of the literal's value.
	if got != "{[X] = 1, [Y] = 2}" {
		t.Errorf("enum-indexed array = %q, want {[X] = 1, [Y] = 2}", got)
	}
}

func TestRenderArrayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := intArray(1, 2, 3)
	var sb strings.Builder
	if err := newCtx().ValuePrint(ctx, &sb, v); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestRenderNestedArray(t *testing.T) {
	elem := typeinfo.NewInt("int", 4, false)
	row := typeinfo.NewArray(elem, 2)
	grid := typeinfo.NewArray(row, 2)
	buf := make([]byte, 0, 16)
	for _, n := range []uint32{1, 2, 3, 4} {
		buf = append(buf, le32(n)...)
	}
	got := renderValue(t, newCtx(), value.FromContents(grid, buf))
	if got != "{{1, 2}, {3, 4}}" {
		t.Errorf("nested array = %q, want {{1, 2}, {3, 4}}", got)
	}
}
