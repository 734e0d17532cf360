package jsoncdc

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// Encode converts v into a tagged Value. It never fails: values outside the
// supported set are encoded as TypeString using their fmt representation.
//
// Integers encode as TypeInt, *big.Int as TypeInt64. Floats and decimals without a
// fractional part encode as TypeInt, otherwise as TypeFix64. Callers are expected to
// round fixed-point values to 8 fractional digits beforehand.
func Encode(v any) Value {
	return encode(v, 0)
}

// maxDepth bounds nesting so self-referencing containers terminate.
const maxDepth = 64

func encode(v any, depth int) Value {
	if depth > maxDepth {
		return Value{Type: TypeString, Value: fmt.Sprintf("%T", v)}
	}
	switch x := v.(type) {
	case nil:
		return fallback(v)
	case string:
		return Value{Type: TypeString, Value: x}
	case bool:
		return Value{Type: TypeBool, Value: x}
	case *big.Int:
		if x == nil {
			return fallback(v)
		}
		return Value{Type: TypeInt64, Value: x.String()}
	case decimal.Decimal:
		return number(x)
	case Dictionary:
		return dictionary(x, depth)
	case []any:
		return array(reflect.ValueOf(x), depth)
	}
	return encodeKind(reflect.ValueOf(v), depth)
}

func encodeKind(rv reflect.Value, depth int) Value {
	switch rv.Kind() {
	case reflect.String:
		return Value{Type: TypeString, Value: rv.String()}
	case reflect.Bool:
		return Value{Type: TypeBool, Value: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value{Type: TypeInt, Value: strconv.FormatInt(rv.Int(), 10)}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{Type: TypeInt, Value: strconv.FormatUint(rv.Uint(), 10)}
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fallback(rv.Interface())
		}
		if rv.Kind() == reflect.Float32 {
			return number(decimal.NewFromFloat32(float32(f)))
		}
		return number(decimal.NewFromFloat(f))
	case reflect.Slice, reflect.Array:
		return array(rv, depth)
	case reflect.Map:
		return mapping(rv, depth)
	case reflect.Pointer:
		if !rv.IsNil() {
			return encode(rv.Elem().Interface(), depth+1)
		}
	}
	return fallback(rv.Interface())
}

func fallback(v any) Value {
	return Value{Type: TypeString, Value: fmt.Sprint(v)}
}

func number(d decimal.Decimal) Value {
	if d.IsInteger() {
		return Value{Type: TypeInt, Value: d.String()}
	}
	return Value{Type: TypeFix64, Value: d.String()}
}

func array(rv reflect.Value, depth int) Value {
	items := make([]Value, rv.Len())
	for i := range items {
		items[i] = encode(rv.Index(i).Interface(), depth+1)
	}
	return Value{Type: TypeArray, Value: items}
}

func dictionary(d Dictionary, depth int) Value {
	entries := make([]Entry, 0, len(d))
	for _, p := range d {
		entries = append(entries, Entry{Key: encode(p.Key, depth+1), Value: encode(p.Value, depth+1)})
	}
	return Value{Type: TypeDictionary, Value: entries}
}

// mapping encodes a Go map. Go randomizes map iteration, so entries are sorted
// by encoded key, then by the key's Go type, then by encoded value.
func mapping(rv reflect.Value, depth int) Value {
	type sortable struct {
		entry   Entry
		key     string
		keyType string
		value   string
	}
	items := make([]sortable, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		e := Entry{Key: encode(k, depth+1), Value: encode(iter.Value().Interface(), depth+1)}
		items = append(items, sortable{
			entry:   e,
			key:     keyText(e.Key),
			keyType: fmt.Sprintf("%T", k),
			value:   keyText(e.Value),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.key != b.key {
			return a.key < b.key
		}
		if a.keyType != b.keyType {
			return a.keyType < b.keyType
		}
		return a.value < b.value
	})

	entries := make([]Entry, len(items))
	for i, it := range items {
		entries[i] = it.entry
	}
	return Value{Type: TypeDictionary, Value: entries}
}

func keyText(v Value) string {
	return string(v.Type) + ":" + fmt.Sprint(v.Value)
}
