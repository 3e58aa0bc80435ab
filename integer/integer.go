// Package integer provides the sign-magnitude layout used for decimal
// magnitudes.
//
// Signed integers are encoded big-endian with a trailing sign bit (aka
// zigzag): the magnitude is shifted left by one and the low bit is set when
// the value is negative.
package integer

import (
	"io"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/amount/control"
)

// Error is the error class for this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromBig returns the block holding i.
func FromBig(i *big.Int) *Block {
	data := i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return &Block{
		Value:    data,
		Negative: i.Sign() < 0,
	}
}

// Big returns the value of the block. A negative zero is zero.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Schema for an integer.
type Schema struct {
	// Bits limits the magnitude size. Zero means unlimited.
	Bits uint64

	Signed   bool
	Nullable bool
}

func (s Schema) check(data []byte) (err error) {
	if s.Bits == 0 {
		return nil
	}

	bits := new(big.Int).SetBytes(data).BitLen()
	if uint64(bits) > s.Bits {
		return Error.New("too large: bits=%d limit=%d", bits, s.Bits)
	}

	return nil
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     *control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd *control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next integer into b. A null block leaves b.Value nil. At
// the end of the stream it returns io.EOF.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.cd.Next() {
		return eof(d.cd.Err())
	}

	defer Error.WrapP(&err)

	if d.cd.Type() == control.Null {
		if !d.schema.Nullable {
			return Error.New("unexpected null")
		}

		b.Value = nil
		b.Negative = false

		return nil
	}

	data, err := d.cd.Data()
	if err != nil {
		return err
	}

	if d.schema.Signed {
		err = b.UnmarshalBinary(data)
		if err != nil {
			return err
		}
	} else {
		b.Value = data
		b.Negative = false
	}

	return d.schema.check(b.Value)
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     *control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce *control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes a block. A block without a value is written as null.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil || b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("unexpected null")
		}

		return e.ce.Null()
	}

	err = e.schema.check(b.Value)
	if err != nil {
		return err
	}

	if !e.schema.Signed {
		if b.Negative {
			return Error.New("negative value for unsigned schema")
		}

		data := new(big.Int).SetBytes(b.Value).Bytes()
		if len(data) == 0 {
			data = []byte{0}
		}

		return e.ce.Data(data)
	}

	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// eof maps the end of a control stream to io.EOF.
func eof(err error) error {
	if err != nil {
		return Error.Wrap(err)
	}

	return io.EOF
}
