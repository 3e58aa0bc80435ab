package decimal

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse returns the decimal represented by text.
//
// Surrounding whitespace is ignored. The remaining text must be an optional
// '-', at least one digit and optionally a '.' followed by at least one
// digit. Fractional digits past MaxScale are truncated.
func Parse(text string) (_ Decimal, err error) {
	s := strings.TrimSpace(text)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, dot := strings.Cut(s, ".")
	if !isDigits(whole) || (dot && !isDigits(frac)) {
		return Decimal{}, invalidFormat(text)
	}

	if len(frac) > MaxScale {
		frac = frac[:MaxScale]
	}

	mag, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return Decimal{}, invalidFormat(text)
	}

	if neg {
		mag.Neg(mag)
	}

	return Decimal{mag: mag, scale: len(frac)}, nil
}

// MustParse is like Parse but panics if text is not a decimal number. It is
// meant for literals.
func MustParse(text string) Decimal {
	d, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("decimal.MustParse(%q): %v", text, err))
	}

	return d
}

func invalidFormat(text string) error {
	return Error.Wrap(fmt.Errorf("%w: %q", ErrInvalidFormat, text))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
