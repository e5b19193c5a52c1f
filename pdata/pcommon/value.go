// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package pcommon // import "go.opentelemetry.io/jsonline/pdata/pcommon"

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ValueType specifies the variant held by a Value.
type ValueType int32

// Every attribute value is coerced into exactly one of these variants when it
// enters the pipeline; encoders never inspect the original Go type.
const (
	// ValueTypeEmpty is a null value.
	ValueTypeEmpty ValueType = iota
	ValueTypeStr
	ValueTypeBool
	// ValueTypeInt holds any integer that fits in an int64.
	ValueTypeInt
	ValueTypeDouble
	// ValueTypeUint holds an unsigned integer above math.MaxInt64 as its exact decimal digits.
	ValueTypeUint
	// ValueTypeDecimal holds a high-precision decimal as its canonical text.
	ValueTypeDecimal
	// ValueTypeOther holds the textual form of a value of any other type.
	ValueTypeOther
)

// String returns the string representation of the ValueType.
func (avt ValueType) String() string {
	switch avt {
	case ValueTypeEmpty:
		return "Empty"
	case ValueTypeStr:
		return "Str"
	case ValueTypeBool:
		return "Bool"
	case ValueTypeInt:
		return "Int"
	case ValueTypeDouble:
		return "Double"
	case ValueTypeUint:
		return "Uint"
	case ValueTypeDecimal:
		return "Decimal"
	case ValueTypeOther:
		return "Other"
	}
	return ""
}

// Value is an immutable scalar attribute value.
//
// The zero Value is a null (ValueTypeEmpty).
type Value struct {
	typ ValueType
	// str holds the text of Str, Uint, Decimal and Other values.
	str string
	// num holds the bits of Bool, Int and Double values.
	num uint64
}

// NewValueEmpty creates a new Value with an empty value.
func NewValueEmpty() Value {
	return Value{}
}

// NewValueStr creates a new Value with the given string value.
func NewValueStr(v string) Value {
	return Value{typ: ValueTypeStr, str: v}
}

// NewValueBool creates a new Value with the given bool value.
func NewValueBool(v bool) Value {
	if v {
		return Value{typ: ValueTypeBool, num: 1}
	}
	return Value{typ: ValueTypeBool}
}

// NewValueInt creates a new Value with the given int64 value.
func NewValueInt(v int64) Value {
	return Value{typ: ValueTypeInt, num: uint64(v)}
}

// NewValueUint creates a new Value with the given uint64 value. Values that fit
// in an int64 become ValueTypeInt, larger ones keep their exact decimal digits.
func NewValueUint(v uint64) Value {
	if v <= math.MaxInt64 {
		return NewValueInt(int64(v))
	}
	return Value{typ: ValueTypeUint, str: strconv.FormatUint(v, 10)}
}

// NewValueDouble creates a new Value with the given float64 value.
func NewValueDouble(v float64) Value {
	return Value{typ: ValueTypeDouble, num: math.Float64bits(v)}
}

// NewValueFloat32 creates a new double Value from a float32, keeping only the
// digits that are significant for a float32 (0.1 stays 0.1).
func NewValueFloat32(v float32) Value {
	f64, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	if err != nil {
		f64 = float64(v)
	}
	return NewValueDouble(f64)
}

// NewValueDecimal creates a new Value holding the canonical text of d.
func NewValueDecimal(d decimal.Decimal) Value {
	return Value{typ: ValueTypeDecimal, str: d.String()}
}

// NewValueFromAny coerces an arbitrary Go value into one of the closed variants.
// It never fails: values of unknown types fall back to their textual form.
func NewValueFromAny(v any) Value {
	switch tv := v.(type) {
	case nil:
		return NewValueEmpty()
	case Value:
		return tv
	case string:
		return NewValueStr(tv)
	case bool:
		return NewValueBool(tv)
	case int:
		return NewValueInt(int64(tv))
	case int8:
		return NewValueInt(int64(tv))
	case int16:
		return NewValueInt(int64(tv))
	case int32:
		return NewValueInt(int64(tv))
	case int64:
		return NewValueInt(tv)
	case uint:
		return NewValueUint(uint64(tv))
	case uint8:
		return NewValueInt(int64(tv))
	case uint16:
		return NewValueInt(int64(tv))
	case uint32:
		return NewValueInt(int64(tv))
	case uint64:
		return NewValueUint(tv)
	case uintptr:
		return NewValueUint(uint64(tv))
	case float32:
		return NewValueFloat32(tv)
	case float64:
		return NewValueDouble(tv)
	case decimal.Decimal:
		return NewValueDecimal(tv)
	case *decimal.Decimal:
		if tv == nil {
			return NewValueEmpty()
		}
		return NewValueDecimal(*tv)
	case *big.Int:
		if tv == nil {
			return NewValueEmpty()
		}
		if tv.IsInt64() {
			return NewValueInt(tv.Int64())
		}
		return Value{typ: ValueTypeDecimal, str: tv.String()}
	case *big.Float:
		if tv == nil {
			return NewValueEmpty()
		}
		return Value{typ: ValueTypeDecimal, str: tv.Text('g', -1)}
	case json.Number:
		return NewValueFromNumber(string(tv))
	case time.Time:
		return Value{typ: ValueTypeOther, str: tv.Format(time.RFC3339Nano)}
	case []byte:
		return Value{typ: ValueTypeOther, str: base64.StdEncoding.EncodeToString(tv)}
	case error:
		if isNilPointer(tv) {
			return NewValueEmpty()
		}
		return Value{typ: ValueTypeOther, str: tv.Error()}
	case fmt.Stringer:
		if isNilPointer(tv) {
			return NewValueEmpty()
		}
		return Value{typ: ValueTypeOther, str: tv.String()}
	}
	return newValueFromKind(v)
}

// newValueFromKind handles defined types over the scalar kinds, such as
// `type Code int64`, and falls back to the textual form for everything else.
func newValueFromKind(v any) Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return NewValueBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewValueInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NewValueUint(rv.Uint())
	case reflect.Float32:
		return NewValueFloat32(float32(rv.Float()))
	case reflect.Float64:
		return NewValueDouble(rv.Float())
	case reflect.String:
		return NewValueStr(rv.String())
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return NewValueEmpty()
		}
	}
	return Value{typ: ValueTypeOther, str: fmt.Sprint(v)}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// NewValueFromNumber coerces the literal text of a JSON number. Integers become
// Int (or Uint above math.MaxInt64); other numbers become Double when a
// float64 holds them without losing digits, and Decimal otherwise.
func NewValueFromNumber(num string) Value {
	if i, err := strconv.ParseInt(num, 10, 64); err == nil {
		return NewValueInt(i)
	}
	if u, err := strconv.ParseUint(num, 10, 64); err == nil {
		return NewValueUint(u)
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return Value{typ: ValueTypeOther, str: num}
	}
	if f, _ := d.Float64(); !math.IsInf(f, 0) && decimal.NewFromFloat(f).Equal(d) {
		return NewValueDouble(f)
	}
	return NewValueDecimal(d)
}

// Type returns the variant held by the Value.
func (v Value) Type() ValueType {
	return v.typ
}

// Str returns the text held by Str, Uint, Decimal and Other values, and the
// empty string for every other variant.
func (v Value) Str() string {
	switch v.typ {
	case ValueTypeStr, ValueTypeUint, ValueTypeDecimal, ValueTypeOther:
		return v.str
	}
	return ""
}

// Int returns the int64 value, or 0 if the Value is not ValueTypeInt.
func (v Value) Int() int64 {
	if v.typ != ValueTypeInt {
		return 0
	}
	return int64(v.num)
}

// Double returns the float64 value, or 0 if the Value is not ValueTypeDouble.
func (v Value) Double() float64 {
	if v.typ != ValueTypeDouble {
		return 0
	}
	return math.Float64frombits(v.num)
}

// Bool returns the bool value, or false if the Value is not ValueTypeBool.
func (v Value) Bool() bool {
	return v.typ == ValueTypeBool && v.num != 0
}

// AsString converts the Value to its human-readable form. Null renders as
// "null", unlike the OTLP JSON form which carries an empty string.
func (v Value) AsString() string {
	switch v.typ {
	case ValueTypeEmpty:
		return "null"
	case ValueTypeBool:
		return strconv.FormatBool(v.Bool())
	case ValueTypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case ValueTypeDouble:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	}
	return v.str
}
