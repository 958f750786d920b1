// Package jamo models individual Hangul letters and the code-point
// conversions between the compatibility jamo range (U+3131-U+3163) and the
// modern positional ranges (U+1100 initials, U+1161 medials, U+11A8 finals).
// All higher layers reason in Jamo values; the raw arithmetic lives here.
//
// Archaic and non-standard jamo such as ᅀ are not recognized.
package jamo

import "strings"

// Kind tags the closed set of letter shapes.
type Kind int

const (
	Consonant Kind = iota
	CompositeConsonant
	Vowel
	CompositeVowel
)

// Era selects between the two Unicode encodings of a jamo.
type Era int

const (
	Compatibility Era = iota
	Modern
)

// Position is the slot a jamo occupies inside a syllable block.
type Position int

const (
	Initial Position = iota
	Medial
	Final
)

// Jamo is a single Hangul letter. The canonical representation is the
// compatibility code point; positional modern forms are derived on demand.
type Jamo struct {
	kind Kind
	r    rune
}

func (j Jamo) Kind() Kind { return j.kind }

// Compat returns the compatibility code point of the jamo.
func (j Jamo) Compat() rune { return j.r }

// Modern returns the code point of the jamo in the modern range for the
// given position. ok is false when no such code point exists, e.g. ㄸ has
// no final form.
func (j Jamo) Modern(p Position) (rune, bool) {
	switch p {
	case Initial:
		if i, ok := choseongIndex[j.r]; ok {
			return leadBase + rune(i), true
		}
	case Medial:
		if i, ok := jungseongIndex[j.r]; ok {
			return medialBase + rune(i), true
		}
	case Final:
		if i, ok := jongseongIndex[j.r]; ok {
			return tailBase + rune(i), true
		}
	}
	return 0, false
}

func (j Jamo) IsConsonant() bool { return j.kind == Consonant || j.kind == CompositeConsonant }
func (j Jamo) IsVowel() bool     { return j.kind == Vowel || j.kind == CompositeVowel }

// Class partitions every rune into jamo, precomposed syllable, or other.
type Class int

const (
	Other Class = iota
	Letter
	Syllable
)

// Character is the classification of an arbitrary rune.
type Character struct {
	Class Class
	Jamo  Jamo // set when Class == Letter
	Era   Era  // era of the input code point when Class == Letter
	Rune  rune
}

// Classify determines what a rune is in Hangul terms. It is total and pure.
func Classify(r rune) Character {
	if j, ok := FromCompat(r); ok {
		return Character{Class: Letter, Jamo: j, Era: Compatibility, Rune: r}
	}
	if j, ok := FromModern(r); ok {
		return Character{Class: Letter, Jamo: j, Era: Modern, Rune: r}
	}
	if IsSyllable(r) {
		return Character{Class: Syllable, Rune: r}
	}
	return Character{Class: Other, Rune: r}
}

// FromCompat builds a Jamo from a compatibility code point.
func FromCompat(r rune) (Jamo, bool) {
	switch {
	case strings.ContainsRune(simpleConsonants, r):
		return Jamo{kind: Consonant, r: r}, true
	case strings.ContainsRune(simpleVowels, r):
		return Jamo{kind: Vowel, r: r}, true
	case strings.ContainsRune(compositeConsonants, r):
		return Jamo{kind: CompositeConsonant, r: r}, true
	case strings.ContainsRune(compositeVowels, r):
		return Jamo{kind: CompositeVowel, r: r}, true
	}
	return Jamo{}, false
}

// FromModern builds a Jamo from a code point in any of the three modern
// positional ranges.
func FromModern(r rune) (Jamo, bool) {
	switch {
	case r >= leadBase && r < leadBase+leadCount:
		return FromCompat(choseong[r-leadBase])
	case r >= medialBase && r < medialBase+medialCount:
		return FromCompat(jungseong[r-medialBase])
	case r > tailBase && r < tailBase+tailCount:
		return FromCompat(jongseong[r-tailBase])
	}
	return Jamo{}, false
}

// ValidInitial reports whether r may fill the initial slot of a block.
func ValidInitial(r rune) bool {
	_, ok := choseongIndex[r]
	return ok
}

// ValidMedial reports whether r may fill the vowel slot of a block.
func ValidMedial(r rune) bool {
	_, ok := jungseongIndex[r]
	return ok
}

// ValidFinal reports whether r may fill the final slot of a block.
func ValidFinal(r rune) bool {
	_, ok := jongseongIndex[r]
	return ok
}

// CombineInitial joins two consonants into a doubled initial.
func CombineInitial(a, b rune) (rune, bool) {
	r, ok := initialCompose[[2]rune{a, b}]
	return r, ok
}

// CombineMedial joins two vowels into a diphthong.
func CombineMedial(a, b rune) (rune, bool) {
	r, ok := medialCompose[[2]rune{a, b}]
	return r, ok
}

// CombineFinal joins two consonants into a final cluster.
func CombineFinal(a, b rune) (rune, bool) {
	r, ok := finalCompose[[2]rune{a, b}]
	return r, ok
}

// SplitInitial is the inverse of CombineInitial. Every composite was built
// from exactly two simples, so ok is false only for non-composites.
func SplitInitial(r rune) (rune, rune, bool) {
	pair, ok := initialSplit[r]
	return pair[0], pair[1], ok
}

// SplitMedial is the inverse of CombineMedial.
func SplitMedial(r rune) (rune, rune, bool) {
	pair, ok := medialSplit[r]
	return pair[0], pair[1], ok
}

// SplitFinal is the inverse of CombineFinal.
func SplitFinal(r rune) (rune, rune, bool) {
	pair, ok := finalSplit[r]
	return pair[0], pair[1], ok
}

// IsSyllable reports whether r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= syllableBase && r < syllableBase+leadCount*medialCount*tailCount
}

// ComposeSyllable joins an initial, a medial and an optional final (0 for
// none) into a precomposed syllable. The jamo are given as compatibility
// code points.
func ComposeSyllable(initial, medial, final rune) (rune, bool) {
	li, ok := choseongIndex[initial]
	if !ok {
		return 0, false
	}
	mi, ok := jungseongIndex[medial]
	if !ok {
		return 0, false
	}
	ti := 0
	if final != 0 {
		ti, ok = jongseongIndex[final]
		if !ok {
			return 0, false
		}
	}
	return syllableBase + rune((li*medialCount+mi)*tailCount+ti), true
}

// DecomposeSyllable splits a precomposed syllable into its jamo as
// compatibility code points. The final is 0 when the syllable has none.
func DecomposeSyllable(r rune) (initial, medial, final rune, ok bool) {
	if !IsSyllable(r) {
		return 0, 0, 0, false
	}
	idx := r - syllableBase
	return choseong[idx/(medialCount*tailCount)],
		jungseong[idx/tailCount%medialCount],
		jongseong[idx%tailCount],
		true
}
