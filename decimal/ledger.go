package decimal

import (
	"fmt"
	"math/big"
)

// LedgerScale is the scale of ledger units: the ledger stores amounts as
// signed 64-bit integers counting 10^-7 of a unit.
const LedgerScale = MaxScale

// FromLedgerUnits returns the decimal for a ledger unit count.
func FromLedgerUnits(units int64) Decimal {
	return Decimal{mag: big.NewInt(units), scale: LedgerScale}
}

// LedgerUnits returns d as a ledger unit count. Digits below 10^-7 are
// truncated toward zero.
func (d Decimal) LedgerUnits() (_ int64, err error) {
	units := d.rescale(LedgerScale)
	if !units.IsInt64() {
		return 0, Error.Wrap(fmt.Errorf("%w: %s does not fit in ledger units", ErrOverflow, d))
	}

	return units.Int64(), nil
}
