package ot

// Invert computes the Delta that, applied after d to the string d produced
// from base, restores base. Retains become Follow-attributed retains (they
// don't know what to restore attributes to until composed against a known
// target), Inserts become Deletes, and Deletes reinsert the consumed text
// carrying the attributes that were on the original Delete op (always
// Empty, kept for symmetry with InvertDelta's attribute plumbing).
func (d *Delta) Invert(base string) *Delta {
	inverted := NewDelta()
	rs := runes(base)
	idx := 0

	for _, op := range d.ops {
		switch v := op.(type) {
		case Retain:
			inverted.Retain(v.N, Follow())
			idx += int(v.N)
		case Insert:
			inverted.Delete(uint64(charCount(v.Text)))
		case Delete:
			deleted := string(rs[idx : idx+int(v.N)])
			inverted.Insert(deleted, op.Attrs())
			idx += int(v.N)
		}
	}

	return inverted
}

// InvertDelta produces the inverse of d keyed against other, the Delta
// produced by applying d (other's ops line up, character-for-character in
// d's base space, with the result of d). For each Delete op and each
// attribute-free Retain op of d at base offset [index, index+L), other's ops
// in that same interval tell the inverse what to restore; a Retain carrying
// attributes is re-emitted as Retain(L) with its own attributes and does not
// consult other. Insert ops in d simply become Delete(L) since they occupy
// no base space to reference.
func (d *Delta) InvertDelta(other *Delta) *Delta {
	inverted := NewDelta()
	if other.IsEmpty() {
		return inverted
	}

	fromOther := func(op Operation, index, length int) {
		ops := other.OpsInInterval(NewInterval(index, index+length))
		for _, otherOp := range ops {
			switch op.(type) {
			case Delete:
				inverted.Add(otherOp)
			case Retain:
				invAttrs := InvertAttributes(op.Attrs(), otherOp.Attrs())
				inverted.Retain(otherOp.Length(), invAttrs)
			case Insert:
				// unreachable: Insert never calls fromOther
			}
		}
	}

	index := 0
	for _, op := range d.ops {
		l := int(op.Length())
		switch v := op.(type) {
		case Delete:
			fromOther(op, index, l)
			index += l
		case Retain:
			if !v.Attrs_.IsEmpty() {
				inverted.Retain(uint64(l), v.Attrs_)
			} else {
				fromOther(op, index, l)
			}
			index += l
		case Insert:
			inverted.Delete(uint64(l))
		}
	}

	return inverted
}
