package decimal

import (
	"fmt"
	"math/big"
)

// align returns the magnitudes of d and e at their common (largest) scale.
// Alignment only ever multiplies so it is exact.
func align(d, e Decimal) (x, y *big.Int, scale int) {
	scale = max(d.scale, e.scale)

	return d.rescale(scale), e.rescale(scale), scale
}

// Add returns d + e at the larger of the two scales.
func (d Decimal) Add(e Decimal) Decimal {
	x, y, scale := align(d, e)

	return Decimal{mag: x.Add(x, y), scale: scale}
}

// Sub returns d - e at the larger of the two scales.
func (d Decimal) Sub(e Decimal) Decimal {
	x, y, scale := align(d, e)

	return Decimal{mag: x.Sub(x, y), scale: scale}
}

// Mul returns the exact product d * e. The scale of the result is the sum of
// the operand scales.
func (d Decimal) Mul(e Decimal) Decimal {
	return Decimal{
		mag:   new(big.Int).Mul(d.magnitude(), e.magnitude()),
		scale: d.scale + e.scale,
	}
}

// Div returns d / e with precision fractional digits. The quotient is
// truncated toward zero and never rounded. Precision may not exceed
// MaxPrecision.
func (d Decimal) Div(e Decimal, precision uint) (_ Decimal, err error) {
	if precision > MaxPrecision {
		return Decimal{}, Error.Wrap(fmt.Errorf("%w: %d exceeds %d", ErrInvalidPrecision, precision, MaxPrecision))
	}

	if e.IsZero() {
		return Decimal{}, Error.Wrap(fmt.Errorf("%w: %s / %s", ErrDivisionByZero, d, e))
	}

	return quo(d, e, int(precision)), nil
}

// quo divides assuming e is not zero.
//
//	(a / 10^sa) / (b / 10^sb) * 10^p = (a * 10^(p+sb)) / (b * 10^sa)
func quo(d, e Decimal, precision int) Decimal {
	num := new(big.Int).Mul(d.magnitude(), pow10(precision+e.scale))
	den := new(big.Int).Mul(e.magnitude(), pow10(d.scale))

	return Decimal{mag: num.Quo(num, den), scale: precision}
}

// Cmp compares d and e and returns -1 if d < e, 0 if d == e and +1 if d > e.
// Values are compared after scale alignment so 5.50 and 5.5 are equal.
func (d Decimal) Cmp(e Decimal) int {
	x, y, _ := align(d, e)

	return x.Cmp(y)
}

// Equal reports whether d and e are numerically equal.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// FeeTotal returns the gross amount including a fee of percent:
//
//	d * (1 + percent/100)
//
// The result is truncated to DefaultPrecision fractional digits like Div.
func (d Decimal) FeeTotal(percent Decimal) Decimal {
	factor := Decimal{mag: hundred}.Add(percent)

	return quo(d.Mul(factor), Decimal{mag: hundred}, DefaultPrecision)
}

// FeeAmount returns only the fee of percent charged on d:
//
//	d * percent / 100
//
// The result is truncated to DefaultPrecision fractional digits like Div.
func (d Decimal) FeeAmount(percent Decimal) Decimal {
	return quo(d.Mul(percent), Decimal{mag: hundred}, DefaultPrecision)
}
