package ot

import "strings"

// Apply applies the Delta to s, returning the transformed string.
//
// Returns ErrLengthMismatch if s's character count doesn't equal BaseLen.
func (d *Delta) Apply(s string) (string, error) {
	if charCount(s) != d.BaseLen {
		return "", ErrLengthMismatch
	}

	var result strings.Builder
	rs := runes(s)
	idx := 0

	for _, op := range d.ops {
		switch v := op.(type) {
		case Retain:
			for i := uint64(0); i < v.N && idx < len(rs); i++ {
				result.WriteRune(rs[idx])
				idx++
			}
		case Delete:
			idx += int(v.N)
		case Insert:
			result.WriteString(v.Text)
		}
	}

	return result.String(), nil
}
