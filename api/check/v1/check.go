// Package v1 holds the messages of check.v1.CheckService, expressed with
// protobuf well-known types.
package v1

import (
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type (
	ReadyCheckReq   = emptypb.Empty
	ReadyCheckReply = structpb.Struct
)

// NewReadyCheckReply 构造 {"status": ..., "details": {...}}
func NewReadyCheckReply(status string, details map[string]string) (*ReadyCheckReply, error) {
	fields := map[string]any{"status": status}
	if len(details) > 0 {
		d := make(map[string]any, len(details))
		for k, v := range details {
			d[k] = v
		}
		fields["details"] = d
	}
	return structpb.NewStruct(fields)
}
