package decimal_test

import (
	"errors"
	"fmt"

	"github.com/calebcase/amount/decimal"
)

func ExampleParse() {
	d, err := decimal.Parse(" 12.345678901 ")
	if err != nil {
		panic(err)
	}

	fmt.Println(d, d.Magnitude(), d.Scale())
	// Output: 12.3456789 123456789 7
}

func ExampleDecimal_Div() {
	a := decimal.MustParse("10")
	b := decimal.MustParse("3")

	q, err := a.Div(b, decimal.DefaultPrecision)
	if err != nil {
		panic(err)
	}
	fmt.Println(q)

	_, err = a.Div(decimal.MustParse("0.00"), decimal.DefaultPrecision)
	fmt.Println(errors.Is(err, decimal.ErrDivisionByZero))
	// Output:
	// 3.3333333
	// true
}

func ExampleDecimal_FeeTotal() {
	amount := decimal.MustParse("100")
	percent := decimal.MustParse("1.5")

	fmt.Println(amount.FeeTotal(percent))
	fmt.Println(amount.FeeAmount(percent))
	// Output:
	// 101.5
	// 1.5
}

func ExampleDecimal_LedgerUnits() {
	units, err := decimal.MustParse("12.5").LedgerUnits()
	if err != nil {
		panic(err)
	}

	fmt.Println(units, decimal.FromLedgerUnits(1))
	// Output: 125000000 0.0000001
}
