package token

import "strings"

type Type int

const (
	START Type = iota
	IF
	IS
	THEN
	AND
	OR
	LEFT_PAR
	RIGHT_PAR
	IDENT
	END
)

func (t Type) String() string {
	switch t {
	case START:
		return "START"
	case IF:
		return "IF"
	case IS:
		return "IS"
	case THEN:
		return "THEN"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case LEFT_PAR:
		return "LEFT_PAR"
	case RIGHT_PAR:
		return "RIGHT_PAR"
	case IDENT:
		return "IDENT"
	case END:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// Lookup returns the keyword token for word and true, or IDENT and false when
// word is not one of the reserved words.
func Lookup(word string) (Type, bool) {
	switch strings.ToLower(word) {
	case "if":
		return IF, true
	case "is":
		return IS, true
	case "then":
		return THEN, true
	case "and":
		return AND, true
	case "or":
		return OR, true
	default:
		return IDENT, false
	}
}
