package charset

var (
	upperCase  = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	lowerCase  = []rune("abcdefghijklmnopqrstuvwxyz")
	digits     = []rune("1234567890")
	special    = []rune("!\"#$%&'*+,./:;=?@\\^´`|~")
	minus      = []rune("-")
	underscore = []rune("_")
	space      = []rune(" ")
	brackets   = []rune("<>{}[]()")
)

// SimilarLooking holds the characters removed when similar looking characters are excluded.
var SimilarLooking = []rune{'1', 'l', 'I', '|', 'o', 'O', '0'}

var tables = map[Category][]rune{
	UpperCase:  upperCase,
	LowerCase:  lowerCase,
	Digits:     digits,
	Special:    special,
	Minus:      minus,
	Underscore: underscore,
	Space:      space,
	Brackets:   brackets,
}

// IsSimilarLooking reports whether r is easily confused with another character.
func IsSimilarLooking(r rune) bool {
	for _, s := range SimilarLooking {
		if r == s {
			return true
		}
	}

	return false
}

// Compose returns the characters of every primitive category in c, in canonical order
// (upper, lower, digits, special, minus, underscore, space, brackets).
// With excludeSimilar set, SimilarLooking characters are left out whichever category holds them.
// None composes to an empty slice. The result is a fresh slice owned by the caller.
func Compose(c Category, excludeSimilar bool) []rune {
	out := make([]rune, 0, c.Size(excludeSimilar))

	for _, p := range primitives {
		if !c.Has(p) {
			continue
		}

		for _, r := range tables[p] {
			if excludeSimilar && IsSimilarLooking(r) {
				continue
			}

			out = append(out, r)
		}
	}

	return out
}

// Of returns the primitive category r belongs to, or None.
func Of(r rune) Category {
	for _, p := range primitives {
		for _, t := range tables[p] {
			if t == r {
				return p
			}
		}
	}

	return None
}
