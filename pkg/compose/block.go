// Package compose builds Hangul text from jamo: a block-level state machine
// for one syllable, a word composer for runs of blocks, and a string
// composer that interleaves Hangul words with arbitrary text. Each layer
// owns an instance of the one below it and adds its own bookkeeping.
package compose

import (
	"fmt"

	"hangulcd/pkg/jamo"
)

// HangulBlock is a completed syllable: initial and vowel are required,
// Final is 0 when absent. Values are compatibility code points. A block is
// immutable once constructed.
type HangulBlock struct {
	Initial rune
	Vowel   rune
	Final   rune
}

// Rune converts the block to its precomposed syllable code point.
func (b HangulBlock) Rune() (rune, error) {
	r, ok := jamo.ComposeSyllable(b.Initial, b.Vowel, b.Final)
	if !ok {
		return 0, fmt.Errorf("%w: %q %q %q do not form a syllable", ErrInvalidSequence, b.Initial, b.Vowel, b.Final)
	}
	return r, nil
}

// BlockFromRune is the inverse of Rune.
func BlockFromRune(r rune) (HangulBlock, error) {
	initial, vowel, final, ok := jamo.DecomposeSyllable(r)
	if !ok {
		return HangulBlock{}, fmt.Errorf("%w: %q is not a precomposed syllable", ErrNotHangul, r)
	}
	return HangulBlock{Initial: initial, Vowel: vowel, Final: final}, nil
}

// Decomposed returns the constituent jamo code points of the block in the
// requested era. With split set, composite jamo are further divided into
// their two simple constituents.
func (b HangulBlock) Decomposed(era jamo.Era, split bool) ([]rune, error) {
	out := make([]rune, 0, 6)
	appendJamo := func(r rune, p jamo.Position) error {
		if era == jamo.Compatibility {
			out = append(out, r)
			return nil
		}
		j, ok := jamo.FromCompat(r)
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotHangul, r)
		}
		m, ok := j.Modern(p)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnmappedEra, r)
		}
		out = append(out, m)
		return nil
	}
	appendSlot := func(r rune, p jamo.Position, splitFn func(rune) (rune, rune, bool)) error {
		if split {
			if a, b, ok := splitFn(r); ok {
				if err := appendJamo(a, p); err != nil {
					return err
				}
				return appendJamo(b, p)
			}
		}
		return appendJamo(r, p)
	}

	if err := appendSlot(b.Initial, jamo.Initial, jamo.SplitInitial); err != nil {
		return nil, err
	}
	if err := appendSlot(b.Vowel, jamo.Medial, jamo.SplitMedial); err != nil {
		return nil, err
	}
	if b.Final != 0 {
		if err := appendSlot(b.Final, jamo.Final, jamo.SplitFinal); err != nil {
			return nil, err
		}
	}
	return out, nil
}
