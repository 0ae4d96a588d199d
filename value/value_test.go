package value

import (
	"errors"
	"testing"

	"github.com/wippyai/debug-renderer/typeinfo"
)

func TestRangeSet(t *testing.T) {
	var rs rangeSet
	if rs.overlaps(0, 100) {
		t.Error("empty set overlaps nothing")
	}
	rs.add(10, 5)   // [10,15)
	rs.add(20, 5)   // [20,25)
	rs.add(14, 7)   // bridges both -> [10,25)
	if len(rs.spans) != 1 || rs.spans[0] != (span{10, 25}) {
		t.Fatalf("merge failed: %+v", rs.spans)
	}
	if !rs.overlaps(24, 1) || !rs.overlaps(0, 11) {
		t.Error("overlap detection failed")
	}
	if rs.overlaps(25, 10) || rs.overlaps(0, 10) {
		t.Error("half-open boundaries violated")
	}
	rs.add(0, 1)
	if len(rs.spans) != 2 || rs.spans[0] != (span{0, 1}) {
		t.Fatalf("disjoint insert failed: %+v", rs.spans)
	}
}

func TestAvailabilityMarks(t *testing.T) {
	typ := typeinfo.NewInt("int32", 4, false)
	v := AtAddress(typ, 0x1000)

	if !v.FullyAvailable() {
		t.Error("fresh value should be fully available")
	}
	v.MarkUnavailable(2, 1)
	if v.BytesAvailable(0, 4) {
		t.Error("range covering a missing byte should not be available")
	}
	if !v.BytesAvailable(0, 2) {
		t.Error("prefix before the missing byte should be available")
	}

	v.MarkOptimizedOut(8, 8)
	if !v.BitsAnyOptimizedOut(0, 32) {
		t.Error("optimized-out bits should be visible")
	}
	if v.BitsAnyOptimizedOut(16, 16) {
		t.Error("bits past the mark should be clean")
	}

	v.MarkSynthetic(0, 4)
	if !v.BytesAnySynthetic(3, 1) {
		t.Error("synthetic mark should be visible")
	}
}

func TestWholeValueConstructors(t *testing.T) {
	typ := typeinfo.NewInt("int64", 8, false)

	opt := OptimizedOut(typ)
	if !opt.BitsAnyOptimizedOut(0, 1) || opt.Location() != LocOptimizedOut {
		t.Error("OptimizedOut should mark every bit")
	}

	unav := Unavailable(typ)
	if unav.BytesAvailable(0, 8) || unav.Location() != LocUnavailable {
		t.Error("Unavailable should mark every byte")
	}
}

type sliceMemory struct {
	base uint64
	data []byte
}

func (m *sliceMemory) ReadMemory(addr uint64, buf []byte) (int, error) {
	if addr < m.base || addr >= m.base+uint64(len(m.data)) {
		return 0, errors.New("bad address")
	}
	off := addr - m.base
	n := copy(buf, m.data[off:])
	if n < len(buf) {
		return n, errors.New("short read")
	}
	return n, nil
}

func TestFetch(t *testing.T) {
	typ := typeinfo.NewInt("int32", 4, false)
	mem := &sliceMemory{base: 0x100, data: []byte{1, 2, 3, 4, 5, 6}}

	v := AtAddress(typ, 0x100)
	got, err := v.Fetch(mem, 1, 3)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if got[0] != 2 || got[2] != 4 {
		t.Errorf("Fetch = %v", got)
	}

	local := FromContents(typ, []byte{9, 8, 7, 6})
	got, err = v.Fetch(mem, 0, 4)
	if err != nil {
		t.Fatalf("Fetch memory failed: %v", err)
	}
	got, err = local.Fetch(nil, 2, 2)
	if err != nil || got[0] != 7 {
		t.Errorf("Fetch from contents = %v, %v", got, err)
	}
	if _, err := local.Fetch(nil, 2, 10); err == nil {
		t.Error("Fetch past local contents should fail")
	}
}

func TestFetchPartial(t *testing.T) {
	typ := typeinfo.NewArray(typeinfo.NewInt("uint8", 1, true), 8)
	mem := &sliceMemory{base: 0x100, data: []byte{1, 2, 3, 4}}

	v := AtAddress(typ, 0x100)
	got, err := v.Fetch(mem, 0, 8)
	if err == nil {
		t.Fatal("expected a partial read error")
	}
	if len(got) != 4 {
		t.Errorf("partial prefix = %d bytes, want 4", len(got))
	}
	if v.BytesAvailable(4, 4) {
		t.Error("unreadable tail should be marked unavailable")
	}
	if !v.BytesAvailable(0, 4) {
		t.Error("readable prefix should stay available")
	}
}
