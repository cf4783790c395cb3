package ot

// Delta is an ordered sequence of Operations together with the character
// lengths it requires of (BaseLen) and produces in (TargetLen) the string
// it is applied to. Deltas are immutable from the algebra's viewpoint:
// Apply, Compose, Transform, and Invert all return new Deltas. The only
// mutation is local to a Delta under construction via Insert/Retain/Delete.
type Delta struct {
	ops       []Operation
	BaseLen   int
	TargetLen int
}

// NewDelta creates an empty Delta.
func NewDelta() *Delta {
	return &Delta{ops: make([]Operation, 0)}
}

// WithCapacity creates an empty Delta with pre-allocated op capacity.
func WithCapacity(capacity int) *Delta {
	return &Delta{ops: make([]Operation, 0, capacity)}
}

// Ops returns the underlying operation slice. Callers must not mutate it.
func (d *Delta) Ops() []Operation { return d.ops }

// IsNoop reports whether the Delta has no effect: empty, or a single Retain
// with no attributes.
func (d *Delta) IsNoop() bool {
	if len(d.ops) == 0 {
		return true
	}
	if len(d.ops) == 1 {
		if r, ok := d.ops[0].(Retain); ok {
			return r.Attrs_.IsEmpty()
		}
	}
	return false
}

// IsEmpty reports whether the Delta carries no ops at all.
func (d *Delta) IsEmpty() bool { return len(d.ops) == 0 }

// Delete appends a Delete(n) operation, merging with a trailing Delete.
func (d *Delta) Delete(n uint64) {
	if n == 0 {
		return
	}
	d.BaseLen += int(n)

	if last := len(d.ops) - 1; last >= 0 {
		if del, ok := d.ops[last].(Delete); ok {
			d.ops[last] = Delete{N: del.N + n}
			return
		}
	}
	d.ops = append(d.ops, Delete{N: n})
}

// Insert appends an Insert(text, attrs) operation, applying the builder's
// normalization invariants: merge with an equal-attribute trailing Insert,
// merge-through a trailing [Insert, Delete] pair against the Insert, or
// swap ahead of a trailing Delete so [Delete, Insert] canonicalizes to
// [Insert, Delete].
func (d *Delta) Insert(text string, attrs Attributes) {
	if text == "" {
		return
	}
	d.TargetLen += charCount(text)

	n := len(d.ops)
	if n >= 1 {
		if last, ok := d.ops[n-1].(Insert); ok && last.Attrs_.Equal(attrs) {
			d.ops[n-1] = Insert{Text: last.Text + text, Attrs_: last.Attrs_}
			return
		}
	}

	if n >= 2 {
		if _, ok := d.ops[n-1].(Delete); ok {
			if pre, ok := d.ops[n-2].(Insert); ok && pre.Attrs_.Equal(attrs) {
				d.ops[n-2] = Insert{Text: pre.Text + text, Attrs_: pre.Attrs_}
				return
			}
		}
	}

	if n >= 1 {
		if del, ok := d.ops[n-1].(Delete); ok {
			d.ops[n-1] = Insert{Text: text, Attrs_: attrs}
			d.ops = append(d.ops, del)
			return
		}
	}

	d.ops = append(d.ops, Insert{Text: text, Attrs_: attrs})
}

// Retain appends a Retain(n, attrs) operation, merging with a trailing
// Retain carrying equal attributes.
func (d *Delta) Retain(n uint64, attrs Attributes) {
	if n == 0 {
		return
	}
	d.BaseLen += int(n)
	d.TargetLen += int(n)

	if last := len(d.ops) - 1; last >= 0 {
		if r, ok := d.ops[last].(Retain); ok && r.Attrs_.Equal(attrs) {
			d.ops[last] = Retain{N: r.N + n, Attrs_: r.Attrs_}
			return
		}
	}
	d.ops = append(d.ops, Retain{N: n, Attrs_: attrs})
}

// Add appends any Operation via the corresponding builder method,
// preserving normalization.
func (d *Delta) Add(op Operation) {
	switch v := op.(type) {
	case Retain:
		d.Retain(v.N, v.Attrs_)
	case Delete:
		d.Delete(v.N)
	case Insert:
		d.Insert(v.Text, v.Attrs_)
	}
}
