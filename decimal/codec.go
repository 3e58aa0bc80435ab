package decimal

import (
	"errors"
	"io"

	"github.com/calebcase/amount/control"
	"github.com/calebcase/amount/integer"
)

// Scale sizes, stored in the low two bits of the last byte.
const (
	scaleNone  = 0b00
	scaleSize1 = 0b01
	scaleSize2 = 0b10
	scaleSize3 = 0b11
)

func scaleTrailer(scale int) (trailer []byte, err error) {
	switch {
	case scale == 0:
		return []byte{scaleNone}, nil
	case scale < 1<<6:
		return []byte{byte(scale<<2) | scaleSize1}, nil
	case scale < 1<<14:
		t := scale<<2 | scaleSize2
		return []byte{byte(t >> 8), byte(t)}, nil
	case scale < 1<<22:
		t := scale<<2 | scaleSize3
		return []byte{byte(t >> 16), byte(t >> 8), byte(t)}, nil
	}

	return nil, Error.New("scale too large: %d", scale)
}

// MarshalBinary implements encoding.BinaryMarshaler. See the package
// documentation for the layout.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	trailer, err := scaleTrailer(d.scale)
	if err != nil {
		return nil, err
	}

	data, err = integer.FromBig(d.magnitude()).MarshalBinary()
	if err != nil {
		return nil, err
	}

	return append(data, trailer...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) < 2 {
		return Error.New("truncated: len=%d", len(data))
	}

	size := data[len(data)-1] & 0b11

	n := int(size)
	if size == scaleNone {
		n = 1
	}

	if len(data) < n+1 {
		return Error.New("truncated: len=%d scale bytes=%d", len(data), n)
	}

	var t int
	for _, b := range data[len(data)-n:] {
		t = t<<8 | int(b)
	}

	scale := t >> 2
	if size == scaleNone && scale != 0 {
		return Error.New("malformed scale: %08b", data[len(data)-1])
	}

	blk := &integer.Block{}
	err = blk.UnmarshalBinary(data[:len(data)-n])
	if err != nil {
		return err
	}

	*d = Decimal{mag: blk.Big(), scale: scale}

	return nil
}

// Schema represents a configured number format.
type Schema struct {
	// Fixed writes every value at Scale as a bare integer. Values needing
	// more fractional digits than Scale are rejected.
	Fixed bool
	Scale uint32

	Nullable bool
}

// Encoder writes decimals as control blocks.
type Encoder struct {
	schema Schema
	ce     *control.Encoder
	ie     *integer.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce *control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
		ie: integer.NewEncoder(integer.Schema{
			Signed:   true,
			Nullable: schema.Nullable,
		}, ce),
	}
}

// Encode writes d. A nil d is written as a null block when the schema is
// nullable.
func (e *Encoder) Encode(d *Decimal) (err error) {
	defer Error.WrapP(&err)

	if d == nil {
		if !e.schema.Nullable {
			return Error.New("unexpected null")
		}

		return e.ce.Null()
	}

	if e.schema.Fixed {
		scale := int(e.schema.Scale)

		c := d.Canonical()
		if c.scale > scale {
			return Error.New("%s exceeds schema scale %d", d, scale)
		}

		return e.ie.Encode(integer.FromBig(c.rescale(scale)))
	}

	data, err := d.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder reads decimals written by an Encoder with the same schema.
type Decoder struct {
	schema Schema
	cd     *control.Decoder
	id     *integer.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd *control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
		id: integer.NewDecoder(integer.Schema{
			Signed:   true,
			Nullable: schema.Nullable,
		}, cd),
	}
}

// Decode reads the next decimal. A null block yields nil. At the end of the
// stream it returns io.EOF.
func (d *Decoder) Decode() (_ *Decimal, err error) {
	if d.schema.Fixed {
		blk := &integer.Block{}

		err = d.id.Decode(blk)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}

			return nil, Error.Wrap(err)
		}

		if blk.Value == nil {
			return nil, nil
		}

		return &Decimal{mag: blk.Big(), scale: int(d.schema.Scale)}, nil
	}

	if !d.cd.Next() {
		if err := d.cd.Err(); err != nil {
			return nil, Error.Wrap(err)
		}

		return nil, io.EOF
	}

	if d.cd.Type() == control.Null {
		if !d.schema.Nullable {
			return nil, Error.New("unexpected null")
		}

		return nil, nil
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	v := &Decimal{}

	err = v.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	return v, nil
}
