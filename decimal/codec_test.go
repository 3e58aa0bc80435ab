package decimal_test

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/amount/control"
	"github.com/calebcase/amount/decimal"
	"github.com/calebcase/oops"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		Magnitude int64
		Scale     int
		Data      []byte
		Mark      error
	}

	tcs := []TC{
		{
			Magnitude: 0,
			Scale:     0,
			Data:      []byte{0b0000_0000, 0b0000_0000},
			Mark:      oops.New("unexpected"),
		},
		{
			Magnitude: 100,
			Scale:     0,
			Data:      []byte{0b1100_1000, 0b0000_0000},
			Mark:      oops.New("unexpected"),
		},
		{
			Magnitude: 15,
			Scale:     1,
			Data:      []byte{0b0001_1110, 0b0000_0101},
			Mark:      oops.New("unexpected"),
		},
		{
			Magnitude: -15,
			Scale:     1,
			Data:      []byte{0b0001_1111, 0b0000_0101},
			Mark:      oops.New("unexpected"),
		},
		{
			Magnitude: -1,
			Scale:     7,
			Data:      []byte{0b0000_0011, 0b0001_1101},
			Mark:      oops.New("unexpected"),
		},
		{
			Magnitude: 1,
			Scale:     64,
			Data:      []byte{0b0000_0010, 0b0000_0001, 0b0000_0010},
			Mark:      oops.New("unexpected"),
		},
		{
			Magnitude: 1,
			Scale:     1 << 14,
			Data:      []byte{0b0000_0010, 0b0000_0001, 0b0000_0000, 0b0000_0011},
			Mark:      oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		d, err := decimal.NewFromInt64(tc.Magnitude, tc.Scale)
		require.NoError(t, err, tc.Mark)

		t.Run(d.GoString(), func(t *testing.T) {
			data, err := d.MarshalBinary()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Data, data, tc.Mark)

			v := decimal.Decimal{}
			err = v.UnmarshalBinary(data)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Scale, v.Scale(), tc.Mark)
			require.Equal(t, 0, big.NewInt(tc.Magnitude).Cmp(v.Magnitude()), tc.Mark)
		})
	}

	t.Run("scale too large", func(t *testing.T) {
		d, err := decimal.NewFromInt64(1, 1<<22)
		require.NoError(t, err)

		_, err = d.MarshalBinary()
		require.Error(t, err)
		require.True(t, decimal.Error.Has(err))
	})

	t.Run("malformed", func(t *testing.T) {
		for _, data := range [][]byte{
			nil,
			{0b0000_0000},
			{0b0000_0100},
			{0b0000_0001, 0b0000_0010},
			{0b0000_0000, 0b0000_0011},
		} {
			v := decimal.Decimal{}

			err := v.UnmarshalBinary(data)
			require.Error(t, err, spew.Sdump(data))
			require.True(t, decimal.Error.Has(err))
		}
	})
}

func TestEncodeDecode(t *testing.T) {
	values := []string{
		"0",
		"1.5",
		"-0.0000001",
		"100",
		"123456789012345678901234567890.1234567",
		"-42.25",
	}

	t.Run("floating", func(t *testing.T) {
		buf := &bytes.Buffer{}
		enc := decimal.NewEncoder(decimal.Schema{}, control.NewEncoder(buf))

		for _, s := range values {
			d := decimal.MustParse(s)
			require.NoError(t, enc.Encode(&d), s)
		}

		dec := decimal.NewDecoder(decimal.Schema{}, control.NewDecoder(buf))

		for _, s := range values {
			d, err := dec.Decode()
			require.NoError(t, err, s)
			require.NotNil(t, d, s)
			require.Equal(t, decimal.MustParse(s).Scale(), d.Scale(), s)
			require.Equal(t, s, d.String())
		}

		_, err := dec.Decode()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("wire", func(t *testing.T) {
		buf := &bytes.Buffer{}
		enc := decimal.NewEncoder(decimal.Schema{}, control.NewEncoder(buf))

		d := decimal.MustParse("1.5")
		require.NoError(t, enc.Encode(&d))

		// Data + 1 block holding +15 and a scale of 1.
		require.Equal(t, []byte{0b0011_1110, 0b0000_0101}, buf.Bytes())
	})

	t.Run("fixed", func(t *testing.T) {
		schema := decimal.Schema{
			Fixed:    true,
			Scale:    decimal.LedgerScale,
			Nullable: true,
		}

		buf := &bytes.Buffer{}
		enc := decimal.NewEncoder(schema, control.NewEncoder(buf))

		for _, s := range values {
			d := decimal.MustParse(s)
			require.NoError(t, enc.Encode(&d), s)
		}
		require.NoError(t, enc.Encode(nil))

		dec := decimal.NewDecoder(schema, control.NewDecoder(buf))

		for _, s := range values {
			d, err := dec.Decode()
			require.NoError(t, err, s)
			require.NotNil(t, d, s)
			require.Equal(t, decimal.LedgerScale, d.Scale(), s)
			require.Equal(t, s, d.String())
		}

		d, err := dec.Decode()
		require.NoError(t, err)
		require.Nil(t, d)

		_, err = dec.Decode()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("fixed scale exceeded", func(t *testing.T) {
		buf := &bytes.Buffer{}
		enc := decimal.NewEncoder(decimal.Schema{Fixed: true, Scale: 2}, control.NewEncoder(buf))

		ok := decimal.MustParse("1.2000000")
		require.NoError(t, enc.Encode(&ok))

		bad := decimal.MustParse("1.205")
		err := enc.Encode(&bad)
		require.Error(t, err)
		require.True(t, decimal.Error.Has(err))
	})

	t.Run("null", func(t *testing.T) {
		buf := &bytes.Buffer{}

		enc := decimal.NewEncoder(decimal.Schema{}, control.NewEncoder(buf))
		require.Error(t, enc.Encode(nil))

		enc = decimal.NewEncoder(decimal.Schema{Nullable: true}, control.NewEncoder(buf))
		require.NoError(t, enc.Encode(nil))

		dec := decimal.NewDecoder(decimal.Schema{}, control.NewDecoder(bytes.NewReader(buf.Bytes())))
		_, err := dec.Decode()
		require.Error(t, err)

		dec = decimal.NewDecoder(decimal.Schema{Nullable: true}, control.NewDecoder(bytes.NewReader(buf.Bytes())))
		d, err := dec.Decode()
		require.NoError(t, err)
		require.Nil(t, d)
	})

	t.Run("corrupt", func(t *testing.T) {
		dec := decimal.NewDecoder(decimal.Schema{}, control.NewDecoder(bytes.NewReader([]byte{0b0100_0011, 0b0000_0000})))

		_, err := dec.Decode()
		require.Error(t, err)
		require.False(t, errors.Is(err, io.EOF))
		require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	})
}
