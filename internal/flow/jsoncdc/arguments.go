package jsoncdc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// BuildArguments encodes each value and returns its base64 JSON form, in input order.
func BuildArguments(values ...any) ([]string, error) {
	args := make([]string, 0, len(values))
	for i, v := range values {
		raw, err := json.Marshal(Encode(v))
		if err != nil {
			return nil, fmt.Errorf("marshal argument %d: %w", i, err)
		}
		args = append(args, base64.StdEncoding.EncodeToString(raw))
	}
	return args, nil
}

// BuildScript base64 encodes raw script source.
func BuildScript(source string) string {
	return base64.StdEncoding.EncodeToString([]byte(source))
}

// DecodeArgument reverses BuildArguments for a single argument.
func DecodeArgument(arg string) (Value, error) {
	raw, err := base64.StdEncoding.DecodeString(arg)
	if err != nil {
		return Value{}, fmt.Errorf("decode base64 argument: %w", err)
	}
	var v Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return Value{}, fmt.Errorf("unmarshal argument: %w", err)
	}
	return v, nil
}
