// Package ot implements Operational Transformation over attributed Unicode
// text for collaborative editing.
//
// Every document change is modeled as a Delta: an ordered sequence of
// Insert/Retain/Delete operations, each optionally carrying formatting
// Attributes. Four algebraic functions make concurrent editing converge:
// Apply, Compose, Transform, and Invert. This package is grounded on
// shiv248/operational-transformation-go, itself a port of the Rust
// operational-transform crate, generalized here to carry attributes the way
// AppFlowy's flowy-ot core does.
package ot

import "unicode/utf8"

// Operation is one of Insert, Retain, or Delete.
type Operation interface {
	isOperation()
	// Length returns the character length of the operation, measured in
	// Unicode scalar values.
	Length() uint64
	// Attrs returns the attributes carried by the operation. Delete always
	// returns Empty.
	Attrs() Attributes
}

// Insert adds Text at the current cursor position, applying Attrs to it.
type Insert struct {
	Text  string
	Attrs_ Attributes
}

func (Insert) isOperation()        {}
func (i Insert) Length() uint64    { return uint64(charCount(i.Text)) }
func (i Insert) Attrs() Attributes { return i.Attrs_ }

// Retain advances N characters of the base. When Attrs is Custom, those
// attributes are applied to the retained run (RemoveMark entries clear
// attributes on the base).
type Retain struct {
	N      uint64
	Attrs_ Attributes
}

func (Retain) isOperation()        {}
func (r Retain) Length() uint64    { return r.N }
func (r Retain) Attrs() Attributes { return r.Attrs_ }

// Delete removes N characters of the base. It carries no attributes.
type Delete struct {
	N uint64
}

func (Delete) isOperation()        {}
func (d Delete) Length() uint64    { return d.N }
func (d Delete) Attrs() Attributes { return Empty() }

// charCount returns the number of Unicode scalar values in s. This is
// critical for wire compatibility: lengths are scalar-value counts, never
// byte counts or grapheme-cluster counts.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
}

// runes converts s into its scalar-value slice, used wherever an op needs
// to split text by character index rather than byte offset.
func runes(s string) []rune {
	return []rune(s)
}
