package ot

// Transform takes two concurrent Deltas A and B, both defined against the
// same base, and produces a pair A', B' such that:
//
//	apply(apply(S, a), bPrime) = apply(apply(S, b), aPrime)
//
// This is the TP1 property that makes collaborative editing converge.
// Self's Insert is processed before other's Insert at the same position;
// callers whose protocol needs the opposite tie-break invoke
// other.Transform(self) and swap the results.
//
// Returns ErrLengthMismatch if a.BaseLen != b.BaseLen.
//
// Grounded on shiv248-operational-transformation-go's Transform, itself a
// port of the Rust operational-transform crate's Delta::transform,
// generalized to carry attributes.
func (a *Delta) Transform(b *Delta) (*Delta, *Delta, error) {
	if a.BaseLen != b.BaseLen {
		return nil, nil, ErrLengthMismatch
	}

	aPrime := NewDelta()
	bPrime := NewDelta()

	ops1 := newOpIterator(a.ops)
	ops2 := newOpIterator(b.ops)

	op1 := ops1.next()
	op2 := ops2.next()

	for {
		if op1 == nil && op2 == nil {
			return aPrime, bPrime, nil
		}

		// Self's Insert wins the position ahead of other's Insert.
		if ins, ok := op1.(Insert); ok {
			aPrime.Insert(ins.Text, ins.Attrs_)
			bPrime.Retain(ins.Length(), ins.Attrs_)
			op1 = ops1.next()
			continue
		}

		if ins, ok := op2.(Insert); ok {
			hasLeft := op1 != nil
			var leftAttrs Attributes
			if hasLeft {
				leftAttrs = op1.Attrs()
			}
			attrs := TransformAttributes(leftAttrs, ins.Attrs_, hasLeft, true)
			aPrime.Retain(ins.Length(), attrs)
			bPrime.Insert(ins.Text, attrs)
			op2 = ops2.next()
			continue
		}

		if op1 == nil || op2 == nil {
			return nil, nil, ErrLengthMismatch
		}

		if ret1, ok1 := op1.(Retain); ok1 {
			if ret2, ok2 := op2.(Retain); ok2 {
				attrs := TransformAttributes(ret1.Attrs_, ret2.Attrs_, true, true)
				switch {
				case ret1.N < ret2.N:
					aPrime.Retain(ret1.N, attrs)
					bPrime.Retain(ret1.N, attrs)
					op2 = Retain{N: ret2.N - ret1.N, Attrs_: ret2.Attrs_}
					op1 = ops1.next()
				case ret1.N == ret2.N:
					aPrime.Retain(ret1.N, attrs)
					bPrime.Retain(ret1.N, attrs)
					op1 = ops1.next()
					op2 = ops2.next()
				default:
					aPrime.Retain(ret2.N, attrs)
					bPrime.Retain(ret2.N, attrs)
					op1 = Retain{N: ret1.N - ret2.N, Attrs_: ret1.Attrs_}
					op2 = ops2.next()
				}
				continue
			}
		}

		if del1, ok1 := op1.(Delete); ok1 {
			if del2, ok2 := op2.(Delete); ok2 {
				switch {
				case del1.N < del2.N:
					op2 = Delete{N: del2.N - del1.N}
					op1 = ops1.next()
				case del1.N == del2.N:
					op1 = ops1.next()
					op2 = ops2.next()
				default:
					op1 = Delete{N: del1.N - del2.N}
					op2 = ops2.next()
				}
				continue
			}
		}

		if del, ok1 := op1.(Delete); ok1 {
			if ret, ok2 := op2.(Retain); ok2 {
				switch {
				case del.N < ret.N:
					aPrime.Delete(del.N)
					op2 = Retain{N: ret.N - del.N, Attrs_: ret.Attrs_}
					op1 = ops1.next()
				case del.N == ret.N:
					aPrime.Delete(del.N)
					op1 = ops1.next()
					op2 = ops2.next()
				default:
					aPrime.Delete(ret.N)
					op1 = Delete{N: del.N - ret.N}
					op2 = ops2.next()
				}
				continue
			}
		}

		if ret, ok1 := op1.(Retain); ok1 {
			if del, ok2 := op2.(Delete); ok2 {
				switch {
				case ret.N < del.N:
					bPrime.Delete(ret.N)
					op2 = Delete{N: del.N - ret.N}
					op1 = ops1.next()
				case ret.N == del.N:
					bPrime.Delete(ret.N)
					op1 = ops1.next()
					op2 = ops2.next()
				default:
					bPrime.Delete(del.N)
					op1 = Retain{N: ret.N - del.N, Attrs_: ret.Attrs_}
					op2 = ops2.next()
				}
				continue
			}
		}

		return nil, nil, ErrLengthMismatch
	}
}
