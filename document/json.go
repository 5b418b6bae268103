// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseJSON decodes data into a Value tree. Unlike decoding into
// map[string]any, this preserves each object's native (source-order) key
// sequence, which deterministic enumeration of `.*`, `.**`, and
// `.keyvalue()` requires.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("document: trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("document: unexpected delimiter %q", t)
		}
	case nil:
		return Null, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		n, err := NumericFromString(t.String())
		if err != nil {
			return Value{}, err
		}
		return Num(n), nil
	case string:
		return Str(t), nil
	default:
		return Value{}, fmt.Errorf("document: unsupported JSON token %T", tok)
	}
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return Value{}, err
	}
	return Bin(BuildArray(items)), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("document: object key is not a string")
		}
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		entries = append(entries, Entry{Key: key, Val: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return Value{}, err
	}
	return Bin(BuildObject(entries)), nil
}

// MarshalJSON renders v back to JSON text. Datetime values are rendered
// as their ISO-ish string encoding (see Datetime.String).
func MarshalJSON(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v Value) error {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumeric:
		n, _ := v.AsNumeric()
		buf.WriteString(n.String())
	case KindString:
		s, _ := v.AsString()
		enc, err := json.Marshal(s)
		if err != nil {
			return err
		}
		buf.Write(enc)
	case KindDatetime:
		d, _ := v.AsDatetime()
		enc, err := json.Marshal(d.String())
		if err != nil {
			return err
		}
		buf.Write(enc)
	case KindBinary:
		c, _ := v.AsContainer()
		switch c.Kind() {
		case ContainerArray:
			buf.WriteByte('[')
			for i, e := range c.Elements() {
				if i > 0 {
					buf.WriteByte(',')
				}
				if err := writeJSON(buf, e); err != nil {
					return err
				}
			}
			buf.WriteByte(']')
		case ContainerObject:
			buf.WriteByte('{')
			for i, e := range c.Entries() {
				if i > 0 {
					buf.WriteByte(',')
				}
				keyEnc, err := json.Marshal(e.Key)
				if err != nil {
					return err
				}
				buf.Write(keyEnc)
				buf.WriteByte(':')
				if err := writeJSON(buf, e.Val); err != nil {
					return err
				}
			}
			buf.WriteByte('}')
		default:
			scalar, _ := ExtractScalar(v)
			return writeJSON(buf, scalar)
		}
	}
	return nil
}
