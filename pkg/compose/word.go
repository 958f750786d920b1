package compose

import (
	"fmt"

	"hangulcd/pkg/jamo"
)

// WordComposer builds a run of syllable blocks. Completed blocks are frozen
// in order; the trailing block stays open in a BlockComposer until a jamo
// forces a boundary. Pop reopens the last frozen block when the open one
// runs dry, so deletions retrace composition exactly.
type WordComposer struct {
	blocks  []HangulBlock
	current *BlockComposer
}

func NewWordComposer() *WordComposer {
	return &WordComposer{current: NewBlockComposer()}
}

// Push feeds one jamo to the word. On error the word is unchanged.
func (w *WordComposer) Push(j jamo.Jamo) error {
	switch w.current.Push(j) {
	case PushApplied:
		return nil
	case PushNeedsNewBlock:
		return w.startNewBlock(j)
	case PushNeedsCarry:
		return w.carryNewBlock(j)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSequence, j.Compat())
	}
}

// startNewBlock freezes the current block and retries the jamo in a fresh
// one. If the retry fails the freeze is rolled back.
func (w *WordComposer) startNewBlock(j jamo.Jamo) error {
	if err := w.completeCurrent(); err != nil {
		return err
	}
	next := NewBlockComposer()
	if next.Push(j) != PushApplied {
		w.reopenLast()
		return fmt.Errorf("%w: %q", ErrInvalidSequence, j.Compat())
	}
	w.current = next
	return nil
}

// carryNewBlock moves the trailing final consonant of the current block into
// a fresh block as its initial, then applies the vowel there. This turns
// ㅇㅓㅂㅅㅓ into 업서 rather than rejecting the vowel.
func (w *WordComposer) carryNewBlock(j jamo.Jamo) error {
	carried, ok := w.current.popFinal()
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSequence, j.Compat())
	}
	if err := w.completeCurrent(); err != nil {
		w.current.Push(carried)
		return err
	}
	next := NewBlockComposer()
	if next.Push(carried) != PushApplied || next.Push(j) != PushApplied {
		w.reopenLast()
		w.current.Push(carried)
		return fmt.Errorf("%w: %q", ErrInvalidSequence, j.Compat())
	}
	w.current = next
	return nil
}

func (w *WordComposer) completeCurrent() error {
	b, ok := w.current.Complete()
	if !ok {
		return fmt.Errorf("%w: block lacks initial or vowel", ErrInvalidSequence)
	}
	w.blocks = append(w.blocks, b)
	return nil
}

// reopenLast pops the newest frozen block back into the editing position.
func (w *WordComposer) reopenLast() bool {
	if len(w.blocks) == 0 {
		return false
	}
	last := w.blocks[len(w.blocks)-1]
	w.blocks = w.blocks[:len(w.blocks)-1]
	w.current = composerFromBlock(last)
	return true
}

// PushRune feeds an arbitrary rune. Jamo in either era are composed;
// precomposed syllables enter as already-finished blocks. Anything else is
// ErrNotHangul and the caller decides what to do with the rune.
func (w *WordComposer) PushRune(r rune) error {
	c := jamo.Classify(r)
	switch c.Class {
	case jamo.Letter:
		return w.Push(c.Jamo)
	case jamo.Syllable:
		b, err := BlockFromRune(r)
		if err != nil {
			return err
		}
		if !w.current.Empty() {
			if err := w.completeCurrent(); err != nil {
				return err
			}
		}
		w.blocks = append(w.blocks, b)
		w.current = NewBlockComposer()
		return nil
	}
	return fmt.Errorf("%w: %q", ErrNotHangul, r)
}

// Pop removes the most recent jamo and returns it. Frozen blocks are
// reopened as needed, so popping walks back through the whole word.
func (w *WordComposer) Pop() (jamo.Jamo, error) {
	if w.current.Empty() && !w.reopenLast() {
		return jamo.Jamo{}, ErrEmpty
	}
	j, res := w.current.Pop()
	if res == PopNone {
		return jamo.Jamo{}, ErrEmpty
	}
	return j, nil
}

// Empty reports whether the word holds no blocks and no pending jamo.
func (w *WordComposer) Empty() bool {
	return len(w.blocks) == 0 && w.current.Empty()
}

// String renders the frozen blocks followed by the open block's preedit.
func (w *WordComposer) String() string {
	var out []rune
	for _, b := range w.blocks {
		r, err := b.Rune()
		if err != nil {
			// unreachable for composer-built blocks; degrade to raw jamo
			if parts, derr := b.Decomposed(jamo.Compatibility, false); derr == nil {
				out = append(out, parts...)
				continue
			}
		}
		out = append(out, r)
	}
	return string(out) + w.current.Preedit()
}

// Blocks returns the frozen blocks in order. The open block is excluded.
func (w *WordComposer) Blocks() []HangulBlock {
	out := make([]HangulBlock, len(w.blocks))
	copy(out, w.blocks)
	return out
}

// Reset discards all content.
func (w *WordComposer) Reset() {
	w.blocks = w.blocks[:0]
	w.current = NewBlockComposer()
}
