package compose

import (
	"errors"
	"testing"

	"hangulcd/pkg/jamo"
)

func TestBlockRune(t *testing.T) {
	cases := []struct {
		block HangulBlock
		want  rune
	}{
		{HangulBlock{Initial: 'ㄱ', Vowel: 'ㅏ'}, '가'},
		{HangulBlock{Initial: 'ㄱ', Vowel: 'ㅏ', Final: 'ㅇ'}, '강'},
		{HangulBlock{Initial: 'ㅇ', Vowel: 'ㅓ', Final: 'ㅄ'}, '없'},
		{HangulBlock{Initial: 'ㄲ', Vowel: 'ㅞ'}, '꿰'},
	}
	for _, tc := range cases {
		got, err := tc.block.Rune()
		if err != nil || got != tc.want {
			t.Fatalf("Rune(%+v) = %q (%v), want %q", tc.block, got, err, tc.want)
		}
	}

	_, err := HangulBlock{Initial: 'ㄳ', Vowel: 'ㅏ'}.Rune()
	if !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence for final-only initial, got %v", err)
	}
	_, err = HangulBlock{Initial: 'ㄱ', Vowel: 'ㅏ', Final: 'ㄸ'}.Rune()
	if !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence for ㄸ final, got %v", err)
	}
}

func TestBlockFromRune(t *testing.T) {
	b, err := BlockFromRune('없')
	if err != nil {
		t.Fatalf("BlockFromRune('없'): %v", err)
	}
	if b != (HangulBlock{Initial: 'ㅇ', Vowel: 'ㅓ', Final: 'ㅄ'}) {
		t.Fatalf("BlockFromRune('없') = %+v", b)
	}

	for _, r := range "Aㄱ1" {
		if _, err := BlockFromRune(r); !errors.Is(err, ErrNotHangul) {
			t.Fatalf("expected ErrNotHangul for %q, got %v", r, err)
		}
	}
}

func TestBlockDecomposed(t *testing.T) {
	b := HangulBlock{Initial: 'ㄲ', Vowel: 'ㅘ', Final: 'ㄺ'}

	cases := []struct {
		era   jamo.Era
		split bool
		want  []rune
	}{
		{jamo.Compatibility, false, []rune{'ㄲ', 'ㅘ', 'ㄺ'}},
		{jamo.Compatibility, true, []rune{'ㄱ', 'ㄱ', 'ㅗ', 'ㅏ', 'ㄹ', 'ㄱ'}},
		{jamo.Modern, false, []rune{0x1101, 0x116A, 0x11B0}},
		{jamo.Modern, true, []rune{0x1100, 0x1100, 0x1169, 0x1161, 0x11AF, 0x11A8}},
	}
	for _, tc := range cases {
		got, err := b.Decomposed(tc.era, tc.split)
		if err != nil {
			t.Fatalf("Decomposed(%v, %v): %v", tc.era, tc.split, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("Decomposed(%v, %v) = %q, want %q", tc.era, tc.split, string(got), string(tc.want))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Decomposed(%v, %v)[%d] = %U, want %U", tc.era, tc.split, i, got[i], tc.want[i])
			}
		}
	}
}

func TestBlockDecomposedUnmappedEra(t *testing.T) {
	// ㄸ exists in the compatibility range but has no modern final form.
	b := HangulBlock{Initial: 'ㄱ', Vowel: 'ㅏ', Final: 'ㄸ'}
	if _, err := b.Decomposed(jamo.Compatibility, false); err != nil {
		t.Fatalf("compatibility decomposition should not need era mapping: %v", err)
	}
	if _, err := b.Decomposed(jamo.Modern, false); !errors.Is(err, ErrUnmappedEra) {
		t.Fatalf("expected ErrUnmappedEra, got %v", err)
	}
}

// Every precomposed syllable round-trips through decomposition, and its
// fully split jamo re-compose through the block state machine.
func TestSyllableRoundTrip(t *testing.T) {
	for r := rune(0xAC00); r <= 0xD7A3; r++ {
		b, err := BlockFromRune(r)
		if err != nil {
			t.Fatalf("BlockFromRune(%U): %v", r, err)
		}
		back, err := b.Rune()
		if err != nil || back != r {
			t.Fatalf("round trip of %U gave %U (%v)", r, back, err)
		}

		parts, err := b.Decomposed(jamo.Compatibility, true)
		if err != nil {
			t.Fatalf("Decomposed(%U): %v", r, err)
		}
		c := NewBlockComposer()
		for _, p := range parts {
			j, ok := jamo.FromCompat(p)
			if !ok {
				t.Fatalf("%U decomposed to non-jamo %q", r, p)
			}
			if res := c.Push(j); res != PushApplied {
				t.Fatalf("%U: re-pushing %q gave %v", r, p, res)
			}
		}
		rebuilt, ok := c.Complete()
		if !ok {
			t.Fatalf("%U: recomposition incomplete", r)
		}
		if got, err := rebuilt.Rune(); err != nil || got != r {
			t.Fatalf("%U: recomposed to %U (%v)", r, got, err)
		}
	}
}
