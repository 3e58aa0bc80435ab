package decimal

import (
	"bytes"
	"encoding/json"
)

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// MarshalJSON implements json.Marshaler. Amounts are written as JSON strings
// so they survive decoders that use floating point numbers.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a JSON string or a
// bare JSON number. A JSON null leaves d unchanged.
func (d *Decimal) UnmarshalJSON(data []byte) (err error) {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string

		err = json.Unmarshal(data, &s)
		if err != nil {
			return Error.Wrap(err)
		}

		return d.UnmarshalText([]byte(s))
	}

	return d.UnmarshalText(data)
}
