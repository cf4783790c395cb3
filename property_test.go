package ot

import (
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// No property-testing library appears anywhere in the retrieval pack (gopter,
// rapid, etc. are all absent), so these laws are checked with the standard
// library's testing/quick instead — see DESIGN.md.

var randomLetters = []rune("abcdefghij日本語")

func randomString(r *rand.Rand, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = randomLetters[r.Intn(len(randomLetters))]
	}
	return string(out)
}

// randomDelta builds a structurally valid, randomly shaped Delta whose
// BaseLen equals the rune count of base.
func randomDelta(r *rand.Rand, base string) *Delta {
	remaining := []rune(base)
	d := NewDelta()

	randomAttrs := func() Attributes {
		switch r.Intn(3) {
		case 0:
			return Empty()
		case 1:
			return Custom(map[string]string{"bold": "true"})
		default:
			return Custom(map[string]string{"bold": RemoveMark})
		}
	}

	for len(remaining) > 0 || r.Intn(4) == 0 {
		switch r.Intn(3) {
		case 0:
			n := 1 + r.Intn(3)
			d.Insert(randomString(r, n), randomAttrs())
		case 1:
			if len(remaining) == 0 {
				continue
			}
			n := 1 + r.Intn(len(remaining))
			d.Retain(uint64(n), randomAttrs())
			remaining = remaining[n:]
		default:
			if len(remaining) == 0 {
				continue
			}
			n := 1 + r.Intn(len(remaining))
			d.Delete(uint64(n))
			remaining = remaining[n:]
		}
		if len(remaining) == 0 && r.Intn(2) == 0 {
			break
		}
	}
	if len(remaining) > 0 {
		d.Retain(uint64(len(remaining)), Empty())
	}
	return d
}

func TestPropertyInvertRoundTrip(t *testing.T) {
	f := func(seed int64, baseLenByte byte) bool {
		r := rand.New(rand.NewSource(seed))
		base := randomString(r, int(baseLenByte%12))
		d := randomDelta(r, base)

		after, err := d.Apply(base)
		if err != nil {
			return false
		}
		restored, err := d.Invert(base).Apply(after)
		if err != nil {
			return false
		}
		return restored == base
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}

func TestPropertyComposeMatchesSequentialApply(t *testing.T) {
	f := func(seed int64, baseLenByte byte) bool {
		r := rand.New(rand.NewSource(seed))
		base := randomString(r, int(baseLenByte%12))
		a := randomDelta(r, base)

		afterA, err := a.Apply(base)
		if err != nil {
			return false
		}
		b := randomDelta(r, afterA)

		afterB, err := b.Apply(afterA)
		if err != nil {
			return false
		}

		composed, err := a.Compose(b)
		if err != nil {
			return false
		}
		afterComposed, err := composed.Apply(base)
		if err != nil {
			return false
		}
		return afterComposed == afterB
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}

func TestPropertyTransformConverges(t *testing.T) {
	f := func(seed int64, baseLenByte byte) bool {
		r := rand.New(rand.NewSource(seed))
		base := randomString(r, int(baseLenByte%12))
		a := randomDelta(r, base)
		b := randomDelta(r, base)

		aPrime, bPrime, err := a.Transform(b)
		if err != nil {
			return false
		}

		afterA, err := a.Apply(base)
		if err != nil {
			return false
		}
		afterAB, err := bPrime.Apply(afterA)
		if err != nil {
			return false
		}

		afterB, err := b.Apply(base)
		if err != nil {
			return false
		}
		afterBA, err := aPrime.Apply(afterB)
		if err != nil {
			return false
		}

		return afterAB == afterBA
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}

func TestPropertyNormalizationIsIdempotent(t *testing.T) {
	f := func(seed int64, baseLenByte byte) bool {
		r := rand.New(rand.NewSource(seed))
		base := randomString(r, int(baseLenByte%12))
		d := randomDelta(r, base)

		rebuilt := NewDelta()
		for _, op := range d.Ops() {
			rebuilt.Add(op)
		}
		if len(rebuilt.Ops()) != len(d.Ops()) {
			return false
		}
		for i, op := range d.Ops() {
			if op.Length() != rebuilt.Ops()[i].Length() {
				return false
			}
			if !op.Attrs().Equal(rebuilt.Ops()[i].Attrs()) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 300}); err != nil {
		t.Error(err)
	}
}

// TestPropertyGeneratorSanity is a non-random regression check that the
// generator itself always produces length-consistent deltas, independent of
// the laws above.
func TestPropertyGeneratorSanity(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		base := randomString(r, i%10)
		d := randomDelta(r, base)
		_, err := d.Apply(base)
		require.NoError(t, err)
	}
}
