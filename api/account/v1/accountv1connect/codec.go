package accountv1connect

import (
	"encoding/json"
	"fmt"
)

// Codec 以 encoding/json 编解码账户消息, 替换 connect 默认的 protojson "json" 编解码器
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	// connect 对空请求体也会调用 Unmarshal
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
