package charset

import (
	"strings"

	"github.com/pkg/errors"
)

// Category is a set of character categories combinable by union.
type Category uint8

// Primitive categories. They never share characters.
const (
	None       Category = 0x00
	UpperCase  Category = 0x01 // A-Z (26)
	LowerCase  Category = 0x02 // a-z (26)
	Digits     Category = 0x04 // 0-9 (10)
	Special    Category = 0x08 // readable special characters (23)
	Minus      Category = 0x10 // '-' (1)
	Underscore Category = 0x20 // '_' (1)
	Space      Category = 0x40 // ' ' (1)
	Brackets   Category = 0x80 // <>{}[]() (8)
)

// Composite categories. URLSafe and FileSystemSafe hold the same 64 characters.
const (
	Letters        = UpperCase | LowerCase
	AlphaNumeric   = Letters | Digits
	All            = AlphaNumeric | Special | Minus | Underscore | Space | Brackets
	URLSafe        = AlphaNumeric | Minus | Underscore
	FileSystemSafe = AlphaNumeric | Minus | Underscore
)

// primitives lists every primitive category in canonical composition order.
var primitives = [...]Category{UpperCase, LowerCase, Digits, Special, Minus, Underscore, Space, Brackets}

var primitiveNames = map[Category]string{
	UpperCase:  "UpperCase",
	LowerCase:  "LowerCase",
	Digits:     "Digits",
	Special:    "Special",
	Minus:      "Minus",
	Underscore: "Underscore",
	Space:      "Space",
	Brackets:   "Brackets",
}

// names maps the lower case names accepted by Parse to their category.
var names = map[string]Category{
	"none":           None,
	"upper":          UpperCase,
	"uppercase":      UpperCase,
	"lower":          LowerCase,
	"lowercase":      LowerCase,
	"digits":         Digits,
	"digit":          Digits,
	"special":        Special,
	"minus":          Minus,
	"underscore":     Underscore,
	"space":          Space,
	"brackets":       Brackets,
	"letters":        Letters,
	"alphanumeric":   AlphaNumeric,
	"all":            All,
	"urlsafe":        URLSafe,
	"filesystemsafe": FileSystemSafe,
}

// Has reports whether every category in flag is part of c.
func (c Category) Has(flag Category) bool {
	return c&flag == flag
}

// Size returns the number of characters Compose yields for c.
func (c Category) Size(excludeSimilar bool) int {
	n := 0

	for _, p := range primitives {
		if !c.Has(p) {
			continue
		}

		for _, r := range tables[p] {
			if excludeSimilar && IsSimilarLooking(r) {
				continue
			}

			n++
		}
	}

	return n
}

// String returns the primitive names of c joined by '|', or "None".
func (c Category) String() string {
	if c == None {
		return "None"
	}

	parts := make([]string, 0, len(primitives))

	for _, p := range primitives {
		if c.Has(p) {
			parts = append(parts, primitiveNames[p])
		}
	}

	return strings.Join(parts, "|")
}

// Parse returns the union of the named categories. Names are case insensitive and may
// be given as separate elements or joined with '|' or ','.
func Parse(list []string) (Category, error) {
	var c Category

	for _, item := range list {
		for _, name := range strings.FieldsFunc(item, func(r rune) bool { return r == '|' || r == ',' }) {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" {
				continue
			}

			flag, ok := names[key]
			if !ok {
				return None, errors.Wrapf(ErrUnknownCategory, "%q", name)
			}

			c |= flag
		}
	}

	return c, nil
}
