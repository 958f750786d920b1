// Package layout maps typed terminal characters to jamo. Unlike a kernel
// input handler there are no keycodes here; the shifted pairs (q/Q, t/T)
// arrive as distinct runes already.
package layout

import (
	"fmt"
	"sort"
)

type Layout struct {
	name string
	keys map[rune]rune
}

func (l *Layout) Name() string { return l.name }

// Jamo translates a typed character. Characters without a mapping, and
// uppercase letters whose shifted position carries no distinct jamo, fall
// back to the lowercase entry; ok is false when neither maps.
func (l *Layout) Jamo(key rune) (rune, bool) {
	if l == nil {
		return 0, false
	}
	if j, ok := l.keys[key]; ok {
		return j, true
	}
	if key >= 'A' && key <= 'Z' {
		j, ok := l.keys[key-'A'+'a']
		return j, ok
	}
	return 0, false
}

// Override rebinds a single key, replacing any existing entry.
func (l *Layout) Override(key, jamo rune) {
	if l == nil {
		return
	}
	l.keys[key] = jamo
}

func addKey(keys map[rune]rune, key, jamo rune) {
	keys[key] = jamo
}

func buildDubeolsik() *Layout {
	keys := make(map[rune]rune)

	addKey(keys, 'q', 'ㅂ')
	addKey(keys, 'Q', 'ㅃ')
	addKey(keys, 'w', 'ㅈ')
	addKey(keys, 'W', 'ㅉ')
	addKey(keys, 'e', 'ㄷ')
	addKey(keys, 'E', 'ㄸ')
	addKey(keys, 'r', 'ㄱ')
	addKey(keys, 'R', 'ㄲ')
	addKey(keys, 't', 'ㅅ')
	addKey(keys, 'T', 'ㅆ')
	addKey(keys, 'y', 'ㅛ')
	addKey(keys, 'u', 'ㅕ')
	addKey(keys, 'i', 'ㅑ')
	addKey(keys, 'o', 'ㅐ')
	addKey(keys, 'O', 'ㅒ')
	addKey(keys, 'p', 'ㅔ')
	addKey(keys, 'P', 'ㅖ')

	addKey(keys, 'a', 'ㅁ')
	addKey(keys, 's', 'ㄴ')
	addKey(keys, 'd', 'ㅇ')
	addKey(keys, 'f', 'ㄹ')
	addKey(keys, 'g', 'ㅎ')
	addKey(keys, 'h', 'ㅗ')
	addKey(keys, 'j', 'ㅓ')
	addKey(keys, 'k', 'ㅏ')
	addKey(keys, 'l', 'ㅣ')

	addKey(keys, 'z', 'ㅋ')
	addKey(keys, 'x', 'ㅌ')
	addKey(keys, 'c', 'ㅊ')
	addKey(keys, 'v', 'ㅍ')
	addKey(keys, 'b', 'ㅠ')
	addKey(keys, 'n', 'ㅜ')
	addKey(keys, 'm', 'ㅡ')

	return &Layout{name: "dubeolsik", keys: keys}
}

func AvailableLayouts() []string {
	names := []string{"dubeolsik"}
	sort.Strings(names)
	return names
}

// Load builds a fresh layout so caller overrides never leak between
// instances.
func Load(name string) (*Layout, error) {
	switch name {
	case "", "dubeolsik":
		return buildDubeolsik(), nil
	default:
		return nil, fmt.Errorf("unknown layout: %s", name)
	}
}
