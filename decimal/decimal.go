package decimal

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

const (
	// MaxScale is the number of fractional digits kept when parsing.
	MaxScale = 7

	// DefaultPrecision is the number of fractional digits produced by
	// division unless told otherwise.
	DefaultPrecision = 7

	// MaxPrecision is the largest division precision accepted. It matches
	// the largest scale the binary encoding can carry.
	MaxPrecision = 1<<22 - 1
)

// Error is the error class for this package.
var Error = errs.Class("decimal")

var (
	// ErrInvalidFormat is returned for text that is not a decimal number.
	ErrInvalidFormat = errors.New("invalid decimal format")

	// ErrDivisionByZero is returned when dividing by a zero magnitude.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when a value does not fit in ledger units.
	ErrOverflow = errors.New("overflow")

	// ErrInvalidPrecision is returned for a division precision above
	// MaxPrecision.
	ErrInvalidPrecision = errors.New("invalid precision")
)

var (
	zero    = big.NewInt(0)
	ten     = big.NewInt(10)
	hundred = big.NewInt(100)
)

// Decimal is a fixed point base 10 number:
//
//	number = magnitude / 10^scale
//
// The zero value is 0. Decimals are immutable and safe for concurrent use.
type Decimal struct {
	mag   *big.Int
	scale int
}

// New returns a decimal equal to mag / 10^scale.
func New(mag *big.Int, scale int) (_ Decimal, err error) {
	if scale < 0 {
		return Decimal{}, Error.Wrap(fmt.Errorf("%w: negative scale %d", ErrInvalidFormat, scale))
	}

	if mag == nil {
		return Decimal{scale: scale}, nil
	}

	return Decimal{mag: new(big.Int).Set(mag), scale: scale}, nil
}

// NewFromInt64 returns a decimal equal to v / 10^scale.
func NewFromInt64(v int64, scale int) (Decimal, error) {
	return New(big.NewInt(v), scale)
}

// magnitude returns the magnitude without copying. Callers must not modify
// it.
func (d Decimal) magnitude() *big.Int {
	if d.mag == nil {
		return zero
	}

	return d.mag
}

// Magnitude returns a copy of the unscaled value.
func (d Decimal) Magnitude() *big.Int {
	return new(big.Int).Set(d.magnitude())
}

// Scale returns the number of implied fractional digits.
func (d Decimal) Scale() int {
	return d.scale
}

// Sign returns -1, 0 or +1 depending on the sign of d.
func (d Decimal) Sign() int {
	return d.magnitude().Sign()
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return Decimal{mag: new(big.Int).Neg(d.magnitude()), scale: d.scale}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	return Decimal{mag: new(big.Int).Abs(d.magnitude()), scale: d.scale}
}

// Canonical returns d with trailing fractional zeros removed from the
// magnitude.
func (d Decimal) Canonical() Decimal {
	mag := new(big.Int).Set(d.magnitude())
	scale := d.scale

	q, r := new(big.Int), new(big.Int)
	for scale > 0 && mag.Sign() != 0 {
		q.QuoRem(mag, ten, r)
		if r.Sign() != 0 {
			break
		}

		mag.Set(q)
		scale--
	}

	if mag.Sign() == 0 {
		scale = 0
	}

	return Decimal{mag: mag, scale: scale}
}

// rescale returns the magnitude of d at the given scale. Digits below the
// scale are truncated toward zero.
func (d Decimal) rescale(scale int) *big.Int {
	switch {
	case scale > d.scale:
		return new(big.Int).Mul(d.magnitude(), pow10(scale-d.scale))
	case scale < d.scale:
		return new(big.Int).Quo(d.magnitude(), pow10(d.scale-scale))
	}

	return new(big.Int).Set(d.magnitude())
}

// String returns the canonical form of d: no trailing fractional zeros and
// no decimal point for whole numbers.
func (d Decimal) String() string {
	mag := d.magnitude()
	if d.scale <= 0 {
		return new(big.Int).Mul(mag, pow10(-d.scale)).String()
	}

	abs := new(big.Int).Abs(mag)
	whole, frac := new(big.Int).QuoRem(abs, pow10(d.scale), new(big.Int))

	digits := frac.String()
	if pad := d.scale - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	digits = strings.TrimRight(digits, "0")

	sb := &strings.Builder{}
	if mag.Sign() < 0 {
		sb.WriteByte('-')
	}
	sb.WriteString(whole.String())
	if digits != "" {
		sb.WriteByte('.')
		sb.WriteString(digits)
	}

	return sb.String()
}

// GoString implements fmt.GoStringer.
func (d Decimal) GoString() string {
	return fmt.Sprintf("decimal.Decimal{mag: %s, scale: %d}", d.magnitude(), d.scale)
}

// pow10 returns 10^n as a new integer.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}
