package tetromino

import "strings"

// Kind identifies one of the seven canonical tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindCount // Sentinel value for iteration
)

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < KindCount
}

// ParseKind converts a letter (case-insensitive) to a Kind.
// Returns KindI and false if the string is not recognized.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I":
		return KindI, true
	case "O":
		return KindO, true
	case "T":
		return KindT, true
	case "S":
		return KindS, true
	case "Z":
		return KindZ, true
	case "J":
		return KindJ, true
	case "L":
		return KindL, true
	default:
		return KindI, false
	}
}

// Kinds returns all kinds in catalog order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}
