package decimal

import (
	gv "github.com/govalues/decimal"
)

// FromGovalues converts a github.com/govalues/decimal value. Fractional
// digits past MaxScale are truncated as with Parse.
func FromGovalues(v gv.Decimal) (Decimal, error) {
	return Parse(v.String())
}

// Govalues converts d to a github.com/govalues/decimal value. It fails when d
// needs more than 19 significant digits.
func (d Decimal) Govalues() (_ gv.Decimal, err error) {
	v, err := gv.Parse(d.String())
	if err != nil {
		return gv.Decimal{}, Error.Wrap(err)
	}

	return v, nil
}
