// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package pcommon // import "go.opentelemetry.io/jsonline/pdata/pcommon"

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Resource describes the process emitting telemetry. It is built once and then
// shared read-only by every exporter.
type Resource struct {
	attrs Map
}

// NewResource creates a Resource with the given attributes, in order.
func NewResource(kvs ...KeyValue) Resource {
	return Resource{attrs: NewMap(kvs...)}
}

// Attributes returns the resource attributes.
func (r Resource) Attributes() Map {
	return r.attrs
}

// DetectResource builds the Resource of the running process. Defaults for
// service.name and service.instance.id come first, then the host detector,
// then OTEL_RESOURCE_ATTRIBUTES and OTEL_SERVICE_NAME, each overriding the
// previous ones.
//
// When some detector fails, or OTEL_RESOURCE_ATTRIBUTES holds malformed pairs,
// the attributes detected so far are returned together with the error.
func DetectResource(ctx context.Context, serviceName string) (Resource, error) {
	defaults := []attribute.KeyValue{semconv.ServiceInstanceID(newInstanceID())}
	if serviceName != "" {
		defaults = append(defaults, semconv.ServiceName(serviceName))
	}
	res, err := sdkresource.New(ctx,
		sdkresource.WithAttributes(defaults...),
		sdkresource.WithHost(),
		sdkresource.WithFromEnv(),
	)
	if res == nil {
		return Resource{}, err
	}
	return NewResourceFromSDK(res), err
}

// NewResourceFromSDK copies the attributes of an OpenTelemetry SDK resource.
func NewResourceFromSDK(res *sdkresource.Resource) Resource {
	var attrs Map
	for _, kv := range res.Attributes() {
		attrs.kvs = append(attrs.kvs, KeyValue{Key: string(kv.Key), Value: newValueFromAttribute(kv.Value)})
	}
	return Resource{attrs: attrs}
}

func newValueFromAttribute(v attribute.Value) Value {
	switch v.Type() {
	case attribute.BOOL:
		return NewValueBool(v.AsBool())
	case attribute.INT64:
		return NewValueInt(v.AsInt64())
	case attribute.FLOAT64:
		return NewValueDouble(v.AsFloat64())
	case attribute.STRING:
		return NewValueStr(v.AsString())
	case attribute.INVALID:
		return NewValueEmpty()
	}
	// Slices have no scalar variant; keep their JSON text.
	return Value{typ: ValueTypeOther, str: v.Emit()}
}

func newInstanceID() string {
	instanceUUID, _ := uuid.NewRandom()
	return instanceUUID.String()
}
