package compose

import (
	"testing"

	"hangulcd/pkg/jamo"
)

func mustJamo(t *testing.T, r rune) jamo.Jamo {
	t.Helper()
	j, ok := jamo.FromCompat(r)
	if !ok {
		t.Fatalf("%q is not a jamo", r)
	}
	return j
}

// pushAll feeds every jamo of the string and returns the result of the last
// push. All earlier pushes must apply.
func pushAll(t *testing.T, c *BlockComposer, jamos string) PushResult {
	t.Helper()
	runes := []rune(jamos)
	for i, r := range runes {
		res := c.Push(mustJamo(t, r))
		if i < len(runes)-1 && res != PushApplied {
			t.Fatalf("push %q: expected PushApplied, got %v", r, res)
		}
		if i == len(runes)-1 {
			return res
		}
	}
	return PushApplied
}

func TestPushTransitions(t *testing.T) {
	cases := []struct {
		jamos   string
		result  PushResult
		state   blockState
		preedit string
	}{
		{"ㄱ", PushApplied, expectDoubleInitialOrVowel, "ㄱ"},
		{"ㄲ", PushApplied, expectVowel, "ㄲ"},
		{"ㄱㄱ", PushApplied, expectVowel, "ㄲ"},
		{"ㄱㅏ", PushApplied, expectCompositeVowelOrFinal, "가"},
		{"ㄱㅗㅏ", PushApplied, expectFinal, "과"},
		{"ㄱㅘ", PushApplied, expectFinal, "과"},
		{"ㄱㅏㅇ", PushApplied, expectCompositeFinal, "강"},
		{"ㅇㅓㅂㅅ", PushApplied, expectNextBlock, "없"},
		{"ㅇㅓㅄ", PushApplied, expectNextBlock, "없"},
		{"ㄷㅏㄹㅎ", PushApplied, expectNextBlock, "닳"},
	}
	for _, tc := range cases {
		c := NewBlockComposer()
		if res := pushAll(t, c, tc.jamos); res != tc.result {
			t.Fatalf("%q: result %v, want %v", tc.jamos, res, tc.result)
		}
		if c.state != tc.state {
			t.Fatalf("%q: state %v, want %v", tc.jamos, c.state, tc.state)
		}
		if got := c.Preedit(); got != tc.preedit {
			t.Fatalf("%q: preedit %q, want %q", tc.jamos, got, tc.preedit)
		}
	}
}

func TestPushRejections(t *testing.T) {
	cases := []struct {
		jamos  string
		result PushResult
	}{
		// a block cannot start with a vowel
		{"ㅏ", PushRejected},
		// nor with a final-only cluster
		{"ㄳ", PushRejected},
		// ㄱㄷ is not a doubled initial
		{"ㄱㄷ", PushRejected},
		// ㅏㅗ is not a diphthong
		{"ㄱㅏㅗ", PushRejected},
		// a second consonant that does not cluster starts the next block
		{"ㄱㅏㄴㄷ", PushNeedsNewBlock},
		// an initial-only double after a vowel starts the next block
		{"ㄱㅏㄸ", PushNeedsNewBlock},
		// a vowel after a final carries the final forward
		{"ㄱㅏㄴㅓ", PushNeedsCarry},
		{"ㅇㅓㅂㅅㅓ", PushNeedsCarry},
		// nothing extends a block with a full composite final
		{"ㄷㅏㄹㅎㄱ", PushNeedsNewBlock},
		{"ㄷㅏㄹㅎㅏ", PushNeedsCarry},
	}
	for _, tc := range cases {
		c := NewBlockComposer()
		runes := []rune(tc.jamos)
		for _, r := range runes[:len(runes)-1] {
			c.Push(mustJamo(t, r))
		}
		before := *c
		if res := c.Push(mustJamo(t, runes[len(runes)-1])); res != tc.result {
			t.Fatalf("%q: result %v, want %v", tc.jamos, res, tc.result)
		}
		if *c != before {
			t.Fatalf("%q: non-applied push mutated the composer", tc.jamos)
		}
	}
}

func TestCompleteRequiresInitialAndVowel(t *testing.T) {
	c := NewBlockComposer()
	if _, ok := c.Complete(); ok {
		t.Fatalf("empty composer should not complete")
	}
	c.Push(mustJamo(t, 'ㄱ'))
	if _, ok := c.Complete(); ok {
		t.Fatalf("initial-only composer should not complete")
	}
	c.Push(mustJamo(t, 'ㅏ'))
	b, ok := c.Complete()
	if !ok {
		t.Fatalf("expected a complete block")
	}
	if r, err := b.Rune(); err != nil || r != '가' {
		t.Fatalf("expected 가, got %q (%v)", r, err)
	}
}

func TestPopLadder(t *testing.T) {
	c := NewBlockComposer()
	pushAll(t, c, "ㅇㅓㅂㅅ")

	steps := []struct {
		jamo    rune
		result  PopResult
		state   blockState
		preedit string
	}{
		{'ㅅ', PopRemoved, expectCompositeFinal, "업"},
		{'ㅂ', PopRemoved, expectCompositeVowelOrFinal, "어"},
		{'ㅓ', PopRemoved, expectDoubleInitialOrVowel, "ㅇ"},
		{'ㅇ', PopEmptied, expectInitial, ""},
	}
	for _, step := range steps {
		j, res := c.Pop()
		if res != step.result || j.Compat() != step.jamo {
			t.Fatalf("pop: got %q/%v, want %q/%v", j.Compat(), res, step.jamo, step.result)
		}
		if c.state != step.state {
			t.Fatalf("after popping %q: state %v, want %v", step.jamo, c.state, step.state)
		}
		if got := c.Preedit(); got != step.preedit {
			t.Fatalf("after popping %q: preedit %q, want %q", step.jamo, got, step.preedit)
		}
	}
	if _, res := c.Pop(); res != PopNone {
		t.Fatalf("expected PopNone on empty composer")
	}
}

func TestPopDoubledInitial(t *testing.T) {
	c := NewBlockComposer()
	pushAll(t, c, "ㄱㄱㅏ")

	steps := []struct {
		jamo  rune
		state blockState
	}{
		{'ㅏ', expectVowel},
		{'ㄱ', expectDoubleInitialOrVowel},
		{'ㄱ', expectInitial},
	}
	for _, step := range steps {
		j, res := c.Pop()
		if res == PopNone || j.Compat() != step.jamo {
			t.Fatalf("pop = %q/%v, want %q", j.Compat(), res, step.jamo)
		}
		if c.state != step.state {
			t.Fatalf("after popping %q: state %v, want %v", step.jamo, c.state, step.state)
		}
	}
}

func TestPopWholeComposites(t *testing.T) {
	// Composites pushed whole come back out whole.
	c := NewBlockComposer()
	pushAll(t, c, "ㄱㅘ")
	j, res := c.Pop()
	if res != PopRemoved || j.Compat() != 'ㅏ' {
		t.Fatalf("split diphthong pops half at a time, got %q/%v", j.Compat(), res)
	}

	c = NewBlockComposer()
	pushAll(t, c, "ㅇㅓㅄ")
	// pushed as a unit, the cluster still recorded its halves
	j, res = c.Pop()
	if res != PopRemoved || j.Compat() != 'ㅄ' {
		t.Fatalf("whole cluster pops whole, got %q/%v", j.Compat(), res)
	}
	if got := c.Preedit(); got != "어" {
		t.Fatalf("preedit %q after popping cluster, want 어", got)
	}
}

func TestPopFinalCarriesTrailingConsonant(t *testing.T) {
	c := NewBlockComposer()
	pushAll(t, c, "ㅇㅓㅂㅅ")
	j, ok := c.popFinal()
	if !ok || j.Compat() != 'ㅅ' {
		t.Fatalf("popFinal = %q (ok=%v), want ㅅ", j.Compat(), ok)
	}
	if got := c.Preedit(); got != "업" {
		t.Fatalf("preedit %q after carry, want 업", got)
	}

	// A whole composite final splits: the first half stays.
	c = NewBlockComposer()
	pushAll(t, c, "ㄷㅏㅀ")
	j, ok = c.popFinal()
	if !ok || j.Compat() != 'ㅎ' {
		t.Fatalf("popFinal = %q (ok=%v), want ㅎ", j.Compat(), ok)
	}
	if got := c.Preedit(); got != "달" {
		t.Fatalf("preedit %q after splitting final, want 달", got)
	}

	c = NewBlockComposer()
	pushAll(t, c, "ㄱㅏ")
	if _, ok := c.popFinal(); ok {
		t.Fatalf("popFinal on a block without a final should fail")
	}
}

func TestComposerFromBlockRetracesKeystrokes(t *testing.T) {
	b := HangulBlock{Initial: 'ㄱ', Vowel: 'ㅘ', Final: 'ㄺ'}
	c := composerFromBlock(b)
	if c.state != expectNextBlock {
		t.Fatalf("state %v, want %v", c.state, expectNextBlock)
	}
	want := []rune{'ㄱ', 'ㄹ', 'ㅏ', 'ㅗ', 'ㄱ'}
	for _, r := range want {
		j, res := c.Pop()
		if res == PopNone || j.Compat() != r {
			t.Fatalf("pop = %q/%v, want %q", j.Compat(), res, r)
		}
	}
	if !c.Empty() {
		t.Fatalf("composer should be empty after popping everything")
	}
}
