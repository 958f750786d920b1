package compose

import "errors"

var (
	// ErrInvalidSequence reports a jamo that violates the position or
	// fill-order rules of syllable composition.
	ErrInvalidSequence = errors.New("compose: jamo not valid in current position")

	// ErrNotHangul reports a rune outside the Hangul jamo and syllable
	// ranges on a Hangul-only path.
	ErrNotHangul = errors.New("compose: not a hangul jamo or syllable")

	// ErrEmpty reports a pop with nothing left to remove.
	ErrEmpty = errors.New("compose: nothing left to pop")

	// ErrUnmappedEra reports a jamo with no code point in the requested era.
	ErrUnmappedEra = errors.New("compose: no code point in requested era")
)
