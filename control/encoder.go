package control

import (
	"encoding/binary"
	"io"
)

// Encoder writes control blocks to a stream.
type Encoder struct {
	w io.Writer

	written uint64
}

// NewEncoder returns a new encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Written returns the number of bytes written so far.
func (e *Encoder) Written() uint64 {
	return e.written
}

func (e *Encoder) write(chunks ...[]byte) (err error) {
	for _, chunk := range chunks {
		n, err := e.w.Write(chunk)
		e.written += uint64(n)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

// Data writes data using the smallest block that can hold it.
func (e *Encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{
			Data.Prefix | data[0],
		})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{
			Data1.Prefix | data[0],
			data[1],
		})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{
			Data2.Prefix | data[0],
			data[1],
			data[2],
		})
	case size <= 64:
		return e.write(
			[]byte{DataSize.Prefix | byte(size-1)},
			data,
		)
	}

	var sb [8]byte
	binary.BigEndian.PutUint64(sb[:], uint64(size-1))

	// Strip leading zero bytes, keeping at least one.
	i := 0
	for i < len(sb)-1 && sb[i] == 0 {
		i++
	}

	return e.write(
		[]byte{DataSizeSize.Prefix | byte(len(sb)-i-1)},
		sb[i:],
		data,
	)
}

// Null writes a null block.
func (e *Encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
