// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package replay

import (
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"go.opentelemetry.io/jsonline/pdata/pcommon"
	"go.opentelemetry.io/jsonline/pdata/plog"
)

func TestDecodeLineFull(t *testing.T) {
	line := `{"time":"2024-03-01T12:30:45.123456789Z","severity":"warning","category":"Auth",` +
		`"body":"User {UserName} logged in","message":"User Alice logged in","state":"s",` +
		`"attributes":{"UserName":"Alice","Age":42,"Ratio":0.25,"Admin":true,"Missing":null,` +
		`"Big":18446744073709551615,"Precise":3.141592653589793238462643383279,"Tags":["a","b"]},` +
		`"eventId":7,"eventName":"Login","traceId":"5b8efff798038103d269b633813fc60c","spanId":"eee19b7ec3c1b174",` +
		`"flags":1,"exception":{"type":"IOError","message":"boom","stacktrace":"at main()","extra":1},"ignored":{"a":[1,2]}}`

	lr, err := DecodeLine([]byte(line))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 12, 30, 45, 123456789, time.UTC), lr.Timestamp)
	assert.Equal(t, plog.SeverityWarn, lr.Severity)
	assert.Equal(t, "Auth", lr.CategoryName)
	assert.Equal(t, "User {UserName} logged in", lr.Body)
	assert.Equal(t, "User Alice logged in", lr.FormattedMessage)
	assert.Equal(t, "s", lr.State)
	assert.Equal(t, plog.EventID{ID: 7, Name: "Login"}, lr.EventID)
	assert.Equal(t, trace.TraceID{0x5b, 0x8e, 0xff, 0xf7, 0x98, 0x03, 0x81, 0x03, 0xd2, 0x69, 0xb6, 0x33, 0x81, 0x3f, 0xc6, 0x0c}, lr.TraceID)
	assert.Equal(t, trace.SpanID{0xee, 0xe1, 0x9b, 0x7e, 0xc3, 0xc1, 0xb1, 0x74}, lr.SpanID)
	assert.Equal(t, trace.FlagsSampled, lr.TraceFlags)
	assert.Equal(t, &plog.Exception{Type: "IOError", Message: "boom", StackTrace: "at main()"}, lr.Exception)

	var keys []string
	var types []pcommon.ValueType
	for k, v := range lr.Attributes.All() {
		keys = append(keys, k)
		types = append(types, v.Type())
	}
	assert.Equal(t, []string{"UserName", "Age", "Ratio", "Admin", "Missing", "Big", "Precise", "Tags"}, keys)
	assert.Equal(t, []pcommon.ValueType{
		pcommon.ValueTypeStr,
		pcommon.ValueTypeInt,
		pcommon.ValueTypeDouble,
		pcommon.ValueTypeBool,
		pcommon.ValueTypeEmpty,
		pcommon.ValueTypeUint,
		pcommon.ValueTypeDecimal,
		pcommon.ValueTypeStr,
	}, types)

	big, ok := lr.Attributes.Get("Big")
	require.True(t, ok)
	assert.Equal(t, "18446744073709551615", big.Str())
	tags, _ := lr.Attributes.Get("Tags")
	assert.Equal(t, `["a","b"]`, tags.Str())
	age, _ := lr.Attributes.Get("Age")
	assert.Equal(t, int64(42), age.Int())
	ratio, _ := lr.Attributes.Get("Ratio")
	assert.InDelta(t, 0.25, ratio.Double(), math.SmallestNonzeroFloat64)
}

func TestDecodeLineDuplicateAttributes(t *testing.T) {
	lr, err := DecodeLine([]byte(`{"attributes":{"B":1,"A":2,"B":3}}`))
	require.NoError(t, err)
	require.Equal(t, 3, lr.Attributes.Len())
	assert.Equal(t, "B", lr.Attributes.At(0).Key)
	assert.Equal(t, "A", lr.Attributes.At(1).Key)
	assert.Equal(t, "B", lr.Attributes.At(2).Key)
	assert.Equal(t, int64(3), lr.Attributes.At(2).Value.Int())
}

func TestDecodeLineSeverity(t *testing.T) {
	tests := []struct {
		line     string
		expected plog.Severity
		wantErr  bool
	}{
		{line: `{"severity":9}`, expected: plog.SeverityInfo},
		{line: `{"level":"crit"}`, expected: plog.SeverityFatal},
		{line: `{"severity":null}`, expected: plog.SeverityUnset},
		{line: `{"severity":"loud"}`, wantErr: true},
		{line: `{"severity":[1]}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			lr, err := DecodeLine([]byte(tt.line))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lr.Severity)
		})
	}
}

func TestDecodeLineErrors(t *testing.T) {
	for _, line := range []string{
		`[1,2]`,
		`{"time":"yesterday"}`,
		`{"traceId":"abc"}`,
		`{"spanId":"not-hex-not-hex!"}`,
		`{"body":"unterminated`,
	} {
		_, err := DecodeLine([]byte(line))
		assert.Error(t, err, line)
	}
}

func TestDecoder(t *testing.T) {
	input := strings.Join([]string{
		`{"body":"first"}`,
		``,
		`   `,
		`{"body":`,
		`{"body":"second"}`,
	}, "\n")
	dec := NewDecoder(strings.NewReader(input))

	lr, err := dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, "first", lr.Body)

	_, err = dec.Decode()
	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 4, lineErr.Line)
	assert.Contains(t, lineErr.Error(), "line 4")

	lr, err = dec.Decode()
	require.NoError(t, err)
	assert.Equal(t, "second", lr.Body)

	_, err = dec.Decode()
	assert.ErrorIs(t, err, io.EOF)
}
