package bigint

import (
	"github.com/globalsign/mgo/bson"
	"github.com/vmihailenco/msgpack/v5"
)

// Serialization uses the base-10 rendering for every codec: it is the one
// form every consumer can re-parse, whatever its own integer width.

// GetBSON encodes the value for mgo.
func (x *BigInt) GetBSON() (interface{}, error) {
	return x.String(), nil
}

// SetBSON decodes a value produced by GetBSON.
func (z *BigInt) SetBSON(raw bson.Raw) error {
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	_, err := z.SetString(s, 10)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (x *BigInt) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *BigInt) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text), 10)
	return err
}

// MarshalJSON encodes the value as a JSON string, never a JSON number:
// readers in other languages would silently round magnitudes beyond their
// native float range.
func (x *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

// UnmarshalJSON decodes a JSON string or bare number.
func (z *BigInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	_, err := z.SetString(s, 10)
	return err
}

var (
	_ msgpack.CustomEncoder = (*BigInt)(nil)
	_ msgpack.CustomDecoder = (*BigInt)(nil)
)

// EncodeMsgpack implements msgpack.CustomEncoder.
func (x *BigInt) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (z *BigInt) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	_, err = z.SetString(s, 10)
	return err
}
