// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package ptrace // import "go.opentelemetry.io/jsonline/pdata/ptrace"

// SpanKind is the type of span. Can be used to specify additional relationships between spans
// in addition to a parent/child relationship.
type SpanKind int32

const (
	// SpanKindUnspecified represents that the SpanKind is unspecified.
	SpanKindUnspecified SpanKind = iota
	// SpanKindInternal indicates that the span represents an internal operation within an application,
	// as opposed to an operation happening at the boundaries. Default value.
	SpanKindInternal
	// SpanKindServer indicates that the span covers server-side handling of an RPC or other
	// remote network request.
	SpanKindServer
	// SpanKindClient indicates that the span describes a request to some remote service.
	SpanKindClient
	// SpanKindProducer indicates that the span describes a producer sending a message to a broker.
	SpanKindProducer
	// SpanKindConsumer indicates that the span describes consumer receiving a message from a broker.
	SpanKindConsumer
)

// String returns the string representation of the SpanKind.
func (sk SpanKind) String() string {
	switch sk {
	case SpanKindUnspecified:
		return "Unspecified"
	case SpanKindInternal:
		return "Internal"
	case SpanKindServer:
		return "Server"
	case SpanKindClient:
		return "Client"
	case SpanKindProducer:
		return "Producer"
	case SpanKindConsumer:
		return "Consumer"
	}
	return ""
}
