package value

// span is a half-open [start, end) interval of byte or bit offsets.
type span struct {
	start, end uint64
}

// rangeSet is a small sorted set of non-overlapping spans. Values mark
// at most a handful of ranges, so linear insertion is fine.
type rangeSet struct {
	spans []span
}

func (rs *rangeSet) add(start, length uint64) {
	if length == 0 {
		return
	}
	end := start + length
	out := rs.spans[:0]
	inserted := false
	for _, s := range rs.spans {
		switch {
		case s.end < start:
			out = append(out, s)
		case end < s.start:
			if !inserted {
				out = append(out, span{start, end})
				inserted = true
			}
			out = append(out, s)
		default:
			// Overlapping or adjacent: merge into the pending span.
			if s.start < start {
				start = s.start
			}
			if s.end > end {
				end = s.end
			}
		}
	}
	if !inserted {
		out = append(out, span{start, end})
	}
	rs.spans = out
}

func (rs *rangeSet) overlaps(start, length uint64) bool {
	if length == 0 {
		return false
	}
	end := start + length
	for _, s := range rs.spans {
		if s.start < end && start < s.end {
			return true
		}
	}
	return false
}

func (rs *rangeSet) empty() bool {
	return len(rs.spans) == 0
}
