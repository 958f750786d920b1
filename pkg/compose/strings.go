package compose

// StringComposer interleaves composed Hangul words with arbitrary text.
// Non-Hangul runes flush the active word into the committed text and are
// appended verbatim; jamo that the word rejects are likewise committed as
// literals rather than surfaced as errors.
type StringComposer struct {
	committed []rune
	word      *WordComposer
}

func NewStringComposer() *StringComposer {
	return &StringComposer{word: NewWordComposer()}
}

// PushRune feeds one rune of input. It never fails: every rune ends up in
// the output one way or another.
func (s *StringComposer) PushRune(r rune) {
	if err := s.word.PushRune(r); err != nil {
		s.commitWord()
		s.committed = append(s.committed, r)
	}
}

// PushString feeds every rune of the string in order.
func (s *StringComposer) PushString(text string) {
	for _, r := range text {
		s.PushRune(r)
	}
}

func (s *StringComposer) commitWord() {
	if s.word.Empty() {
		return
	}
	s.committed = append(s.committed, []rune(s.word.String())...)
	s.word.Reset()
}

// Pop removes and returns the most recent unit of input: a jamo from the
// active word, or the last committed rune once no word is active. Committed
// syllables are removed whole; they are not reopened for jamo-level edits.
func (s *StringComposer) Pop() (rune, error) {
	if !s.word.Empty() {
		j, err := s.word.Pop()
		if err != nil {
			return 0, err
		}
		return j.Compat(), nil
	}
	if len(s.committed) == 0 {
		return 0, ErrEmpty
	}
	r := s.committed[len(s.committed)-1]
	s.committed = s.committed[:len(s.committed)-1]
	return r, nil
}

// Empty reports whether nothing has been typed.
func (s *StringComposer) Empty() bool {
	return len(s.committed) == 0 && s.word.Empty()
}

// String renders the committed text followed by the active word.
func (s *StringComposer) String() string {
	return string(s.committed) + s.word.String()
}

// Flush commits the active word and returns the full text.
func (s *StringComposer) Flush() string {
	s.commitWord()
	return string(s.committed)
}

// Reset discards all content.
func (s *StringComposer) Reset() {
	s.committed = s.committed[:0]
	s.word.Reset()
}

// Translate composes an entire string in one shot.
func Translate(text string) string {
	s := NewStringComposer()
	s.PushString(text)
	return s.Flush()
}
