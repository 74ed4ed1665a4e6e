package slist

import (
	"bytes"
	"encoding/json"

	"github.com/tychoish/slist/ers"
)

// MarshalJSON produces a JSON array representing the items in the
// list. By supporting json.Marshaler and json.Unmarshaler, lists can
// behave as arrays in larger json objects, and can be as the
// output/input of json.Marshal and json.Unmarshal.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	_ = buf.WriteByte('[')

	for c := l.Begin(); c.Ok(); c = c.Next() {
		if c != l.Begin() {
			_ = buf.WriteByte(',')
		}

		item, err := json.Marshal(c.Value())
		if err != nil {
			return nil, ers.Wrapf(err, "encode item <%v>", c.Value())
		}
		_, _ = buf.Write(item)
	}

	_ = buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a json array and appends its values to the
// list. If there are elements in the list, they are not removed. The
// whole input is decoded before any value is appended, so the list
// is unchanged when decoding fails.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	var values []T
	if err := json.Unmarshal(in, &values); err != nil {
		return ers.Wrap(err, "decode list")
	}

	l.Append(values...)
	return nil
}
