package control

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

// Decoder reads control blocks from a stream.
//
//	d := control.NewDecoder(r)
//	for d.Next() {
//		data, err := d.Data()
//		...
//	}
//	if err := d.Err(); err != nil {
//		...
//	}
type Decoder struct {
	r io.Reader

	consumed uint64

	value [1]byte
	t     Type
	data  []byte

	err error
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Next reads the next block. It returns false at the end of the stream or on
// error (see Err).
func (d *Decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.value[0] = 0
	d.t = Unknown
	d.data = nil

	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false
		}

		d.err = Error.Wrap(err)

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	d.err = d.read(t)
	if d.err != nil {
		return false
	}

	d.t = t

	return true
}

func (d *Decoder) read(t Type) (err error) {
	head := d.value[0] & t.Mask

	switch t {
	case Data:
		d.data = []byte{head}
	case Data1:
		d.data, err = d.readN(2, head)
	case Data2:
		d.data, err = d.readN(3, head)
	case DataSize:
		d.data, err = d.readN(uint64(head) + 1)
	case DataSizeSize:
		var sb []byte
		sb, err = d.readN(uint64(head) + 1)
		if err != nil {
			return err
		}

		var buf [8]byte
		copy(buf[len(buf)-len(sb):], sb)

		size := binary.BigEndian.Uint64(buf[:])
		if size >= math.MaxInt64 {
			return Error.New("unimplemented: size >= 2^63")
		}

		d.data, err = d.readN(size + 1)
	case Null:
	}

	return err
}

// readN reads a block body of size bytes. When prefix bytes are given they
// are the leading bytes of the body already held by the control byte.
func (d *Decoder) readN(size uint64, prefix ...byte) (data []byte, err error) {
	remaining := size - uint64(len(prefix))

	buf := bytes.NewBuffer(make([]byte, 0, min(size, 4096)))
	buf.Write(prefix)

	n, err := io.CopyN(buf, d.r, int64(remaining))
	d.consumed += uint64(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, Error.Wrap(err)
	}

	return buf.Bytes(), nil
}

// Err returns the first error encountered by Next.
func (d *Decoder) Err() error {
	return d.err
}

// Type returns the type of the current block.
func (d *Decoder) Type() Type {
	return d.t
}

// Consumed returns the number of bytes read so far.
func (d *Decoder) Consumed() uint64 {
	return d.consumed
}

// Data returns the data held by the current block. If the block does not
// contain data it returns nil and ErrInvalidOperation.
func (d *Decoder) Data() (data []byte, err error) {
	if !d.t.IsData() {
		return nil, ErrInvalidOperation
	}

	return d.data, nil
}
