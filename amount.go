// Package amount provides exact decimal arithmetic on amount strings.
//
// Every operation parses its operands with decimal.Parse, computes with
// scaled integers and returns the canonical string form:
//
//	sum, err := amount.Add("0.1", "0.2") // "0.3"
//	q, err := amount.Divide("10", "3")    // "3.3333333"
//
// Malformed operands fail with decimal.ErrInvalidFormat before any arithmetic
// is attempted and division by zero fails with decimal.ErrDivisionByZero.
// Use errors.Is to tell them apart.
package amount

import (
	"github.com/calebcase/amount/decimal"
)

// Parse returns the decimal represented by text.
func Parse(text string) (decimal.Decimal, error) {
	return decimal.Parse(text)
}

// Canonical returns the canonical form of text.
func Canonical(text string) (string, error) {
	d, err := decimal.Parse(text)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

func parse2(a, b string) (x, y decimal.Decimal, err error) {
	x, err = decimal.Parse(a)
	if err != nil {
		return x, y, err
	}

	y, err = decimal.Parse(b)
	if err != nil {
		return x, y, err
	}

	return x, y, nil
}

// Add returns a + b.
func Add(a, b string) (string, error) {
	x, y, err := parse2(a, b)
	if err != nil {
		return "", err
	}

	return x.Add(y).String(), nil
}

// Subtract returns a - b.
func Subtract(a, b string) (string, error) {
	x, y, err := parse2(a, b)
	if err != nil {
		return "", err
	}

	return x.Sub(y).String(), nil
}

// Multiply returns the exact product a * b.
func Multiply(a, b string) (string, error) {
	x, y, err := parse2(a, b)
	if err != nil {
		return "", err
	}

	return x.Mul(y).String(), nil
}

// Divide returns a / b truncated to decimal.DefaultPrecision fractional
// digits.
func Divide(a, b string) (string, error) {
	return DivideWithPrecision(a, b, decimal.DefaultPrecision)
}

// DivideWithPrecision returns a / b truncated to precision fractional digits.
func DivideWithPrecision(a, b string, precision uint) (string, error) {
	x, y, err := parse2(a, b)
	if err != nil {
		return "", err
	}

	q, err := x.Div(y, precision)
	if err != nil {
		return "", err
	}

	return q.String(), nil
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
func Compare(a, b string) (int, error) {
	x, y, err := parse2(a, b)
	if err != nil {
		return 0, err
	}

	return x.Cmp(y), nil
}

// ApplyFeeTotal returns the gross amount a payer owes: amount plus
// feePercent percent of it.
func ApplyFeeTotal(amount, feePercent string) (string, error) {
	x, p, err := parse2(amount, feePercent)
	if err != nil {
		return "", err
	}

	return x.FeeTotal(p).String(), nil
}

// ApplyFeeAmount returns only the fee: feePercent percent of amount.
func ApplyFeeAmount(amount, feePercent string) (string, error) {
	x, p, err := parse2(amount, feePercent)
	if err != nil {
		return "", err
	}

	return x.FeeAmount(p).String(), nil
}
