package compose

import "hangulcd/pkg/jamo"

// PushResult reports how a BlockComposer handled a jamo.
type PushResult int

const (
	// PushApplied means the jamo was absorbed into the current block.
	PushApplied PushResult = iota
	// PushNeedsNewBlock means the jamo cannot extend the current block but
	// could start the next one. The block is left untouched; acting on the
	// signal is the word layer's job.
	PushNeedsNewBlock
	// PushNeedsCarry means a vowel arrived after a final consonant: the
	// last final must move into the next block as its initial.
	PushNeedsCarry
	// PushRejected means the jamo is illegal here and the block is unchanged.
	PushRejected
)

// PopResult reports the outcome of removing the most recent jamo.
type PopResult int

const (
	// PopRemoved means a jamo was removed and the block still has content.
	PopRemoved PopResult = iota
	// PopEmptied means the removed jamo was the last one.
	PopEmptied
	// PopNone means there was nothing to remove.
	PopNone
)

type blockState int

const (
	// nothing yet, waiting for the first consonant
	expectInitial blockState = iota
	// ex. ㄷ -> ㄸ or 다
	expectDoubleInitialOrVowel
	// ex. ㄸ -> 따
	expectVowel
	// ex. 두 -> 둬 or 둔
	expectCompositeVowelOrFinal
	// ex. 둬 -> 뒁
	expectFinal
	// ex. 달 -> 닳 or 다래
	expectCompositeFinal
	// ex. 닳 -> 달하
	expectNextBlock
)

// BlockComposer accumulates jamo for one in-progress syllable block in
// strict initial -> vowel -> final order. Each slot holds up to two simple
// jamo; composites pushed whole occupy the first half alone.
type BlockComposer struct {
	state                       blockState
	initialFirst, initialSecond rune
	vowelFirst, vowelSecond     rune
	finalFirst, finalSecond     rune
}

func NewBlockComposer() *BlockComposer {
	return &BlockComposer{}
}

// Push offers a jamo to the block. A non-applied result leaves the block
// exactly as it was.
func (c *BlockComposer) Push(j jamo.Jamo) PushResult {
	switch c.state {
	case expectInitial:
		return c.pushInitial(j)
	case expectDoubleInitialOrVowel:
		return c.pushDoubleInitialOrVowel(j)
	case expectVowel:
		return c.pushVowel(j)
	case expectCompositeVowelOrFinal:
		return c.pushCompositeVowelOrFinal(j)
	case expectFinal:
		return c.pushFinal(j)
	case expectCompositeFinal:
		return c.pushCompositeFinal(j)
	case expectNextBlock:
		return c.pushNextBlock(j)
	}
	return PushRejected
}

func (c *BlockComposer) pushInitial(j jamo.Jamo) PushResult {
	switch j.Kind() {
	case jamo.Consonant:
		c.initialFirst = j.Compat()
		c.state = expectDoubleInitialOrVowel
		return PushApplied
	case jamo.CompositeConsonant:
		if jamo.ValidInitial(j.Compat()) {
			c.initialFirst = j.Compat()
			c.state = expectVowel
			return PushApplied
		}
	}
	return PushRejected
}

func (c *BlockComposer) pushDoubleInitialOrVowel(j jamo.Jamo) PushResult {
	switch j.Kind() {
	case jamo.Consonant:
		if _, ok := jamo.CombineInitial(c.initialFirst, j.Compat()); ok {
			c.initialSecond = j.Compat()
			c.state = expectVowel
			return PushApplied
		}
	case jamo.Vowel:
		c.vowelFirst = j.Compat()
		c.state = expectCompositeVowelOrFinal
		return PushApplied
	case jamo.CompositeVowel:
		if a, b, ok := jamo.SplitMedial(j.Compat()); ok {
			c.vowelFirst, c.vowelSecond = a, b
			c.state = expectFinal
			return PushApplied
		}
	}
	return PushRejected
}

func (c *BlockComposer) pushVowel(j jamo.Jamo) PushResult {
	switch j.Kind() {
	case jamo.Vowel:
		c.vowelFirst = j.Compat()
		c.state = expectCompositeVowelOrFinal
		return PushApplied
	case jamo.CompositeVowel:
		if a, b, ok := jamo.SplitMedial(j.Compat()); ok {
			c.vowelFirst, c.vowelSecond = a, b
			c.state = expectFinal
			return PushApplied
		}
	}
	return PushRejected
}

func (c *BlockComposer) pushCompositeVowelOrFinal(j jamo.Jamo) PushResult {
	switch j.Kind() {
	case jamo.Vowel:
		if _, ok := jamo.CombineMedial(c.vowelFirst, j.Compat()); ok {
			c.vowelSecond = j.Compat()
			c.state = expectFinal
			return PushApplied
		}
	case jamo.Consonant:
		c.finalFirst = j.Compat()
		c.state = expectCompositeFinal
		return PushApplied
	case jamo.CompositeConsonant:
		return c.pushCompositeConsonantAsFinal(j)
	}
	return PushRejected
}

func (c *BlockComposer) pushFinal(j jamo.Jamo) PushResult {
	switch j.Kind() {
	case jamo.Consonant:
		c.finalFirst = j.Compat()
		c.state = expectCompositeFinal
		return PushApplied
	case jamo.CompositeConsonant:
		return c.pushCompositeConsonantAsFinal(j)
	}
	return PushRejected
}

func (c *BlockComposer) pushCompositeConsonantAsFinal(j jamo.Jamo) PushResult {
	if jamo.ValidFinal(j.Compat()) {
		c.finalFirst = j.Compat()
		c.state = expectNextBlock
		return PushApplied
	}
	if jamo.ValidInitial(j.Compat()) {
		return PushNeedsNewBlock
	}
	return PushRejected
}

func (c *BlockComposer) pushCompositeFinal(j jamo.Jamo) PushResult {
	switch j.Kind() {
	case jamo.Consonant:
		if _, ok := jamo.CombineFinal(c.finalFirst, j.Compat()); ok {
			c.finalSecond = j.Compat()
			c.state = expectNextBlock
			return PushApplied
		}
		return PushNeedsNewBlock
	case jamo.CompositeConsonant:
		if jamo.ValidInitial(j.Compat()) {
			return PushNeedsNewBlock
		}
		return PushRejected
	case jamo.Vowel, jamo.CompositeVowel:
		return PushNeedsCarry
	}
	return PushRejected
}

func (c *BlockComposer) pushNextBlock(j jamo.Jamo) PushResult {
	switch j.Kind() {
	case jamo.Consonant, jamo.CompositeConsonant:
		return PushNeedsNewBlock
	case jamo.Vowel, jamo.CompositeVowel:
		return PushNeedsCarry
	}
	return PushRejected
}

// Pop removes the most recently filled half-slot and rewinds the state one
// step. Composite jamo that were pushed whole are removed whole.
func (c *BlockComposer) Pop() (jamo.Jamo, PopResult) {
	switch {
	case c.finalSecond != 0:
		r := c.finalSecond
		c.finalSecond = 0
		c.state = expectCompositeFinal
		return compatJamo(r), PopRemoved
	case c.finalFirst != 0:
		r := c.finalFirst
		c.finalFirst = 0
		if c.vowelSecond != 0 {
			c.state = expectFinal
		} else {
			c.state = expectCompositeVowelOrFinal
		}
		return compatJamo(r), PopRemoved
	case c.vowelSecond != 0:
		r := c.vowelSecond
		c.vowelSecond = 0
		c.state = expectCompositeVowelOrFinal
		return compatJamo(r), PopRemoved
	case c.vowelFirst != 0:
		r := c.vowelFirst
		c.vowelFirst = 0
		if c.initialSecond != 0 {
			c.state = expectVowel
		} else {
			c.state = expectDoubleInitialOrVowel
		}
		return compatJamo(r), PopRemoved
	case c.initialSecond != 0:
		r := c.initialSecond
		c.initialSecond = 0
		c.state = expectDoubleInitialOrVowel
		return compatJamo(r), PopRemoved
	case c.initialFirst != 0:
		r := c.initialFirst
		c.initialFirst = 0
		c.state = expectInitial
		return compatJamo(r), PopEmptied
	}
	c.state = expectInitial
	return jamo.Jamo{}, PopNone
}

// popFinal removes the trailing final consonant so the word layer can carry
// it into the next block. A whole composite final is split: its first half
// stays, its second half carries.
func (c *BlockComposer) popFinal() (jamo.Jamo, bool) {
	switch {
	case c.finalSecond != 0:
		r := c.finalSecond
		c.finalSecond = 0
		c.state = expectCompositeFinal
		return compatJamo(r), true
	case c.finalFirst != 0:
		if a, b, ok := jamo.SplitFinal(c.finalFirst); ok {
			c.finalFirst = a
			c.state = expectCompositeFinal
			return compatJamo(b), true
		}
		r := c.finalFirst
		c.finalFirst = 0
		if c.vowelSecond != 0 {
			c.state = expectFinal
		} else {
			c.state = expectCompositeVowelOrFinal
		}
		return compatJamo(r), true
	}
	return jamo.Jamo{}, false
}

// Complete reports the block the composer holds, if initial and vowel are
// both present. The composer is not consumed.
func (c *BlockComposer) Complete() (HangulBlock, bool) {
	initial := combineSlot(c.initialFirst, c.initialSecond, jamo.CombineInitial)
	vowel := combineSlot(c.vowelFirst, c.vowelSecond, jamo.CombineMedial)
	final := combineSlot(c.finalFirst, c.finalSecond, jamo.CombineFinal)
	if initial == 0 || vowel == 0 {
		return HangulBlock{}, false
	}
	return HangulBlock{Initial: initial, Vowel: vowel, Final: final}, true
}

// Empty reports whether no jamo have been accepted.
func (c *BlockComposer) Empty() bool {
	return c.initialFirst == 0 && c.vowelFirst == 0
}

// Preedit renders the in-progress content: the composed syllable once
// initial and vowel are present, otherwise the lone jamo. Total for every
// reachable state; an empty composer renders as "".
func (c *BlockComposer) Preedit() string {
	if b, ok := c.Complete(); ok {
		if r, err := b.Rune(); err == nil {
			return string(r)
		}
	}
	var out []rune
	if r := combineSlot(c.initialFirst, c.initialSecond, jamo.CombineInitial); r != 0 {
		out = append(out, r)
	}
	if r := combineSlot(c.vowelFirst, c.vowelSecond, jamo.CombineMedial); r != 0 {
		out = append(out, r)
	}
	if r := combineSlot(c.finalFirst, c.finalSecond, jamo.CombineFinal); r != 0 {
		out = append(out, r)
	}
	return string(out)
}

// composerFromBlock reopens a completed block for further edits, splitting
// composites back into their halves so pops retrace the original keystrokes.
func composerFromBlock(b HangulBlock) *BlockComposer {
	c := NewBlockComposer()
	if a, s, ok := jamo.SplitInitial(b.Initial); ok {
		c.initialFirst, c.initialSecond = a, s
	} else {
		c.initialFirst = b.Initial
	}
	if a, s, ok := jamo.SplitMedial(b.Vowel); ok {
		c.vowelFirst, c.vowelSecond = a, s
	} else {
		c.vowelFirst = b.Vowel
	}
	if b.Final != 0 {
		if a, s, ok := jamo.SplitFinal(b.Final); ok {
			c.finalFirst, c.finalSecond = a, s
		} else {
			c.finalFirst = b.Final
		}
	}

	switch {
	case c.finalSecond != 0:
		c.state = expectNextBlock
	case c.finalFirst != 0:
		c.state = expectCompositeFinal
	case c.vowelSecond != 0:
		c.state = expectFinal
	case c.vowelFirst != 0:
		c.state = expectCompositeVowelOrFinal
	case c.initialSecond != 0:
		c.state = expectVowel
	case c.initialFirst != 0:
		c.state = expectDoubleInitialOrVowel
	}
	return c
}

// combineSlot folds a half-filled slot back into a single jamo. The pair is
// validated when the second half is pushed, so the combine cannot fail for
// composer-built slots.
func combineSlot(first, second rune, combine func(rune, rune) (rune, bool)) rune {
	if first == 0 || second == 0 {
		return first
	}
	if r, ok := combine(first, second); ok {
		return r
	}
	return first
}

func compatJamo(r rune) jamo.Jamo {
	j, _ := jamo.FromCompat(r)
	return j
}
