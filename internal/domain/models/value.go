package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind discriminates the shapes a field value can arrive in
// before normalization.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindList
)

// Value is a tagged variant for the schema-less field values accepted
// at the API and provider boundaries. It deliberately never reaches
// the persisted model: the content normalizer collapses a FieldMap to
// a plain string map before storage.
type Value struct {
	Kind   ValueKind
	Str    string
	Num    float64
	Bool   bool
	Object map[string]Value
	List   []Value
}

// FieldMap maps field names to not-yet-normalized values.
type FieldMap map[string]Value

// StringValue builds a string-kinded value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// UnmarshalJSON decodes any JSON value into the matching variant.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = fromInterface(raw)
	return nil
}

// MarshalJSON re-encodes the variant as the JSON shape it arrived in.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toInterface())
}

func fromInterface(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Value{Kind: KindNull}
	case string:
		return Value{Kind: KindString, Str: t}
	case float64:
		return Value{Kind: KindNumber, Num: t}
	case bool:
		return Value{Kind: KindBool, Bool: t}
	case map[string]interface{}:
		obj := make(map[string]Value, len(t))
		for k, elem := range t {
			obj[k] = fromInterface(elem)
		}
		return Value{Kind: KindObject, Object: obj}
	case []interface{}:
		list := make([]Value, len(t))
		for i, elem := range t {
			list[i] = fromInterface(elem)
		}
		return Value{Kind: KindList, List: list}
	default:
		// json.Unmarshal into interface{} never yields other types;
		// fall back to fmt for safety.
		return Value{Kind: KindString, Str: fmt.Sprintf("%v", t)}
	}
}

func (v Value) toInterface() interface{} {
	switch v.Kind {
	case KindNull:
		return nil
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindObject:
		obj := make(map[string]interface{}, len(v.Object))
		for k, elem := range v.Object {
			obj[k] = elem.toInterface()
		}
		return obj
	case KindList:
		list := make([]interface{}, len(v.List))
		for i, elem := range v.List {
			list[i] = elem.toInterface()
		}
		return list
	default:
		return nil
	}
}

// Canonical returns the canonical string form of the value: empty
// string for null, JSON for composites, plain rendering otherwise.
func (v Value) Canonical() string {
	switch v.Kind {
	case KindNull:
		return ""
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindObject, KindList:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}
