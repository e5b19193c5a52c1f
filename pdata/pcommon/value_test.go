// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package pcommon

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

type plain struct {
	A int
}

type statusCode int64

type level uint8

type ratio float32

type enabled bool

type label string

type nilErr struct{}

func (*nilErr) Error() string { return "never called on nil" }

func TestNewValueFromAny(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		wantType ValueType
		wantStr  string
	}{
		{name: "nil", input: nil, wantType: ValueTypeEmpty, wantStr: "null"},
		{name: "string", input: "text", wantType: ValueTypeStr, wantStr: "text"},
		{name: "empty string", input: "", wantType: ValueTypeStr, wantStr: ""},
		{name: "bool", input: true, wantType: ValueTypeBool, wantStr: "true"},
		{name: "int", input: -3, wantType: ValueTypeInt, wantStr: "-3"},
		{name: "int8", input: int8(-8), wantType: ValueTypeInt, wantStr: "-8"},
		{name: "int16", input: int16(16), wantType: ValueTypeInt, wantStr: "16"},
		{name: "int32", input: int32(math.MinInt32), wantType: ValueTypeInt, wantStr: "-2147483648"},
		{name: "int64", input: int64(math.MaxInt64), wantType: ValueTypeInt, wantStr: "9223372036854775807"},
		{name: "uint8", input: uint8(255), wantType: ValueTypeInt, wantStr: "255"},
		{name: "uint16", input: uint16(65535), wantType: ValueTypeInt, wantStr: "65535"},
		{name: "uint32", input: uint32(math.MaxUint32), wantType: ValueTypeInt, wantStr: "4294967295"},
		{name: "uint64 fits", input: uint64(math.MaxInt64), wantType: ValueTypeInt, wantStr: "9223372036854775807"},
		{name: "uint64 overflow", input: uint64(math.MaxInt64) + 1, wantType: ValueTypeUint, wantStr: "9223372036854775808"},
		{name: "uint64 max", input: uint64(math.MaxUint64), wantType: ValueTypeUint, wantStr: "18446744073709551615"},
		{name: "uint overflow", input: uint(math.MaxUint64), wantType: ValueTypeUint, wantStr: "18446744073709551615"},
		{name: "float32", input: float32(0.1), wantType: ValueTypeDouble, wantStr: "0.1"},
		{name: "float64", input: 2.5, wantType: ValueTypeDouble, wantStr: "2.5"},
		{name: "decimal", input: decimal.RequireFromString("79228162514264337593543950335.25"), wantType: ValueTypeDecimal, wantStr: "79228162514264337593543950335.25"},
		{name: "big int small", input: big.NewInt(42), wantType: ValueTypeInt, wantStr: "42"},
		{name: "big int large", input: new(big.Int).Lsh(big.NewInt(1), 70), wantType: ValueTypeDecimal, wantStr: "1180591620717411303424"},
		{name: "time", input: time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC), wantType: ValueTypeOther, wantStr: "2024-01-02T03:04:05.000000006Z"},
		{name: "bytes", input: []byte{1, 2, 3}, wantType: ValueTypeOther, wantStr: "AQID"},
		{name: "error", input: errors.New("boom"), wantType: ValueTypeOther, wantStr: "boom"},
		{name: "stringer", input: stringer{}, wantType: ValueTypeOther, wantStr: "stringer"},
		{name: "struct", input: plain{A: 1}, wantType: ValueTypeOther, wantStr: "{1}"},
		{name: "value passthrough", input: NewValueInt(7), wantType: ValueTypeInt, wantStr: "7"},
		{name: "nil error pointer", input: error((*nilErr)(nil)), wantType: ValueTypeEmpty, wantStr: "null"},
		{name: "nil stringer pointer", input: (*url.URL)(nil), wantType: ValueTypeEmpty, wantStr: "null"},
		{name: "nil struct pointer", input: (*plain)(nil), wantType: ValueTypeEmpty, wantStr: "null"},
		{name: "nil slice of strings", input: []string(nil), wantType: ValueTypeEmpty, wantStr: "null"},
		{name: "url", input: &url.URL{Scheme: "https", Host: "example.com"}, wantType: ValueTypeOther, wantStr: "https://example.com"},
		{name: "defined int", input: statusCode(-42), wantType: ValueTypeInt, wantStr: "-42"},
		{name: "defined uint", input: level(3), wantType: ValueTypeInt, wantStr: "3"},
		{name: "defined float32", input: ratio(0.1), wantType: ValueTypeDouble, wantStr: "0.1"},
		{name: "defined bool", input: enabled(true), wantType: ValueTypeBool, wantStr: "true"},
		{name: "defined string", input: label("x"), wantType: ValueTypeStr, wantStr: "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValueFromAny(tt.input)
			assert.Equal(t, tt.wantType, v.Type())
			assert.Equal(t, tt.wantStr, v.AsString())
		})
	}
}

func TestUint64OverflowRoundTrips(t *testing.T) {
	for _, u := range []uint64{math.MaxInt64 + 1, math.MaxUint64 - 1, math.MaxUint64, 12345678901234567890} {
		v := NewValueUint(u)
		require.Equal(t, ValueTypeUint, v.Type())
		parsed, err := strconv.ParseUint(v.Str(), 10, 64)
		require.NoError(t, err)
		assert.Equal(t, u, parsed)
	}
}

func TestNewValueFromNumber(t *testing.T) {
	tests := []struct {
		num      string
		wantType ValueType
		wantStr  string
	}{
		{num: "12", wantType: ValueTypeInt, wantStr: "12"},
		{num: "-12", wantType: ValueTypeInt, wantStr: "-12"},
		{num: "18446744073709551615", wantType: ValueTypeUint, wantStr: "18446744073709551615"},
		{num: "1.25", wantType: ValueTypeDouble, wantStr: "1.25"},
		{num: "0.1", wantType: ValueTypeDouble, wantStr: "0.1"},
		{num: "1e3", wantType: ValueTypeDouble, wantStr: "1000"},
		{num: "0.30000000000000004", wantType: ValueTypeDouble, wantStr: "0.30000000000000004"},
		{num: "3.141592653589793", wantType: ValueTypeDouble, wantStr: "3.141592653589793"},
		{num: "-2.2250738585072014e-308", wantType: ValueTypeDouble, wantStr: "-2.2250738585072014e-308"},
		{num: "0.1000000000000000055511151231257827", wantType: ValueTypeDecimal, wantStr: "0.1000000000000000055511151231257827"},
		{num: "3.14159265358979323846264338327950288", wantType: ValueTypeDecimal, wantStr: "3.14159265358979323846264338327950288"},
		{num: "99999999999999999999999", wantType: ValueTypeDecimal, wantStr: "99999999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.num, func(t *testing.T) {
			v := NewValueFromAny(json.Number(tt.num))
			assert.Equal(t, tt.wantType, v.Type())
			assert.Equal(t, tt.wantStr, v.AsString())
		})
	}
}

func TestValueAccessorsOnWrongVariant(t *testing.T) {
	v := NewValueStr("x")
	assert.Equal(t, int64(0), v.Int())
	assert.Equal(t, float64(0), v.Double())
	assert.False(t, v.Bool())

	i := NewValueInt(4)
	assert.Equal(t, "", i.Str())
	assert.Equal(t, int64(4), i.Int())

	assert.Equal(t, ValueTypeEmpty, Value{}.Type())
	assert.Equal(t, "", NewValueEmpty().Str())
}

func TestValueTypeString(t *testing.T) {
	assert.Equal(t, "Empty", ValueTypeEmpty.String())
	assert.Equal(t, "Uint", ValueTypeUint.String())
	assert.Equal(t, "Decimal", ValueTypeDecimal.String())
	assert.Equal(t, "Other", ValueTypeOther.String())
	assert.Equal(t, "", ValueType(100).String())
}
