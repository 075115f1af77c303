package token

import (
	"strings"

	"github.com/DjordjeVuckovic/fuzzy-engine/internal/apperr"
)

const (
	sp  = ' '
	stx = '\u0002' // start of text
	etx = '\u0003' // end of text
)

type scanState int

const (
	starting scanState = iota
	scanning
	finish
)

// Scanner splits rule text into tokens. Identifier text is not carried by the
// tokens; it is appended to an ordered list that the parser reads back.
type Scanner struct {
	input  []byte
	idents []string
	ch     byte
	index  int
	state  scanState
}

// NewScanner creates a Scanner for the trimmed, lowercased text.
func NewScanner(text string) *Scanner {
	return &Scanner{
		input: []byte(strings.ToLower(strings.TrimSpace(text))),
		ch:    stx,
		state: starting,
	}
}

// Next returns the next token. Once END has been produced every further call
// yields END again.
func (s *Scanner) Next() (Type, error) {
	switch s.state {
	case starting:
		return s.start(), nil
	case scanning:
		return s.scan()
	default:
		return END, nil
	}
}

// HasMore reports whether END has not been produced yet.
func (s *Scanner) HasMore() bool {
	return s.state != finish
}

// Identifier returns the most recently scanned identifier.
func (s *Scanner) Identifier() string {
	if len(s.idents) == 0 {
		return ""
	}
	return s.idents[len(s.idents)-1]
}

// PreviousIdentifier returns the identifier scanned before Identifier.
func (s *Scanner) PreviousIdentifier() string {
	if len(s.idents) < 2 {
		return ""
	}
	return s.idents[len(s.idents)-2]
}

// Identifiers returns all identifiers scanned so far, in order.
func (s *Scanner) Identifiers() []string {
	out := make([]string, len(s.idents))
	copy(out, s.idents)
	return out
}

func (s *Scanner) start() Type {
	s.nextChar()
	s.state = scanning
	return START
}

func (s *Scanner) scan() (Type, error) {
	for s.ch == sp {
		s.nextChar()
	}

	switch s.ch {
	case '(':
		s.nextChar()
		return LEFT_PAR, nil
	case ')':
		s.nextChar()
		return RIGHT_PAR, nil
	case etx:
		s.state = finish
		return END, nil
	default:
		return s.readIdentifier()
	}
}

func (s *Scanner) nextChar() {
	if s.index < len(s.input) {
		s.ch = s.input[s.index]
		s.index++
	} else {
		s.ch = etx
	}
}

func (s *Scanner) readIdentifier() (Type, error) {
	if !isLetter(s.ch) {
		return END, apperr.NewIllegalName(s.index)
	}

	var b strings.Builder
	for isLetter(s.ch) || isDigit(s.ch) {
		b.WriteByte(s.ch)
		s.nextChar()
	}

	word := b.String()
	if kw, ok := Lookup(word); ok {
		return kw, nil
	}

	s.idents = append(s.idents, word)
	return IDENT, nil
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize drains a scanner over text and returns every token up to and
// including END.
func Tokenize(text string) ([]Type, error) {
	s := NewScanner(text)

	var types []Type
	for s.HasMore() {
		t, err := s.Next()
		if err != nil {
			return types, err
		}
		types = append(types, t)
	}
	return types, nil
}
