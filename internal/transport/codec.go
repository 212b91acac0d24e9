package transport

import (
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc/encoding"
)

const codecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec carries plain Go messages over gRPC as JSON.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return (&gwruntime.JSONBuiltin{}).Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return (&gwruntime.JSONBuiltin{}).Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return codecName
}
