// Package jsoncdc encodes Go values into the typed JSON representation the
// access API expects for transaction arguments, and encodes scripts for transport.
package jsoncdc

import (
	"encoding/json"
	"fmt"
)

// Type tags a Value.
type Type string

const (
	TypeString     Type = "String"
	TypeBool       Type = "Bool"
	TypeInt64      Type = "Int64"
	TypeInt        Type = "Int"
	TypeFix64      Type = "Fix64"
	TypeDictionary Type = "Dictionary"
	TypeArray      Type = "Array"
)

// Value is a tagged value. Value holds a string for scalar numeric and string types,
// a bool for TypeBool, []Value for TypeArray and []Entry for TypeDictionary.
type Value struct {
	Type  Type `json:"type"`
	Value any  `json:"value"`
}

// Entry is a single key/value entry of a dictionary Value.
type Entry struct {
	Key   Value `json:"key"`
	Value Value `json:"value"`
}

// Pair is one entry of an ordered Dictionary input.
type Pair struct {
	Key   any
	Value any
}

// Dictionary is an ordered mapping. Unlike a Go map it keeps its entry order when encoded.
type Dictionary []Pair

// UnmarshalJSON restores nested Values so decoded arguments compare equal to their encoded form.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  Type            `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.Type = raw.Type
	switch raw.Type {
	case TypeArray:
		items := make([]Value, 0)
		if err := json.Unmarshal(raw.Value, &items); err != nil {
			return fmt.Errorf("decode array: %w", err)
		}
		v.Value = items
	case TypeDictionary:
		entries := make([]Entry, 0)
		if err := json.Unmarshal(raw.Value, &entries); err != nil {
			return fmt.Errorf("decode dictionary: %w", err)
		}
		v.Value = entries
	case TypeBool:
		var b bool
		if err := json.Unmarshal(raw.Value, &b); err != nil {
			return fmt.Errorf("decode bool: %w", err)
		}
		v.Value = b
	default:
		var s string
		if err := json.Unmarshal(raw.Value, &s); err == nil {
			v.Value = s
			return nil
		}
		var other any
		if err := json.Unmarshal(raw.Value, &other); err != nil {
			return fmt.Errorf("decode %s: %w", raw.Type, err)
		}
		v.Value = other
	}
	return nil
}
