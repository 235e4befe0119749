// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package style

// opKind tags the variant held by an op.
type opKind uint8

const (
	opAlphabet opKind = iota
	opAny
	opBegin
	opEnd
)

// op is a single symbol in the matcher's transition alphabet: either a
// specific Tag, the Any wildcard, or one of the sentinel Begin/End
// markers bracketing an input sequence.
type op struct {
	kind opKind
	tag  Tag
}

func opOf(t Tag) op   { return op{kind: opAlphabet, tag: t} }
func opAnyOf() op     { return op{kind: opAny} }
func opBeginOf() op    { return op{kind: opBegin} }
func opEndOf() op      { return op{kind: opEnd} }

// isSatisfiedBy reports whether a DFA edge labeled lhs accepts the input
// symbol rhs: Any accepts any Alphabet, Begin only Begin, End only End,
// and Alphabet(a) only Alphabet(a).
func (lhs op) isSatisfiedBy(rhs op) bool {
	switch lhs.kind {
	case opAlphabet:
		return rhs.kind == opAlphabet && rhs.tag == lhs.tag
	case opAny:
		return rhs.kind == opAlphabet
	case opBegin:
		return rhs.kind == opBegin
	case opEnd:
		return rhs.kind == opEnd
	default:
		return false
	}
}

// allOps enumerates the full transition alphabet: every Tag, plus Any,
// Begin and End.
func allOps() []op {
	ops := make([]op, 0, len(allTags)+3)
	for _, t := range allTags {
		ops = append(ops, opOf(t))
	}
	ops = append(ops, opAnyOf(), opBeginOf(), opEndOf())
	return ops
}
