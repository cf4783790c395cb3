package ot

// Interval is a half-open [Start, End) character range over a Delta's
// linearized op space (Insert/Retain/Delete lengths summed in order).
type Interval struct {
	Start int
	End   int
}

// NewInterval returns the interval [start, end).
func NewInterval(start, end int) Interval {
	return Interval{Start: start, End: end}
}

// ContainsRange reports whether [s, e) is fully contained in iv.
func (iv Interval) ContainsRange(s, e int) bool {
	return s >= iv.Start && e <= iv.End
}

// OpsInInterval returns the subsequence of ops whose character range
// overlaps iv. Ops are returned whole, not clipped to the interval.
func (d *Delta) OpsInInterval(iv Interval) []Operation {
	ops := make([]Operation, 0, len(d.ops))
	offset := 0

	for _, op := range d.ops {
		l := int(op.Length())
		if offset >= iv.End {
			break
		}
		if offset+l > iv.Start {
			ops = append(ops, op)
		}
		offset += l
	}

	return ops
}

// AttributesInInterval accumulates attributes from Insert ops whose
// [offset, offset+len) range is fully contained in iv, merging their
// Custom maps (later ops override) and normalizing the result. Unlike
// OpsInInterval, offsets here count only Insert and Retain lengths; Delete
// ops do not advance the offset. Retain ops never contribute: this is the
// resolved behavior of an Open Question left unimplemented by
// original_source (see DESIGN.md).
func (d *Delta) AttributesInInterval(iv Interval) Attributes {
	data := make(map[string]string)
	offset := 0

	for _, op := range d.ops {
		switch v := op.(type) {
		case Delete:
			// Deletes carry no attributes and don't occupy target space.
		case Insert:
			end := charCount(v.Text)
			if v.Attrs_.kind == attrCustom && iv.ContainsRange(offset, offset+end) {
				logger.Debugw("attributes_in_interval: extend from insert", "interval", iv, "op", v)
				for k, val := range v.Attrs_.data {
					data[k] = val
				}
			}
			offset += end
		case Retain:
			// Intentionally contributes no attributes; see the doc comment
			// above. Still occupies target space, so offset must advance.
			offset += int(v.N)
		}
	}

	return Custom(data).applyRule()
}
