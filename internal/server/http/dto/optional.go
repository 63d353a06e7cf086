package dto

import (
	"encoding/json"
	"fmt"

	"github.com/polkiloo/shopapi/internal/domain/model"
)

// fields holds raw JSON members of a partial update body.
type fields map[string]json.RawMessage

func decodeFields(data []byte) (fields, error) {
	var raw fields
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// optional decodes key when present. A missing key or an explicit null leaves
// the field unset.
func optional[T any](raw fields, key string) (model.Optional[T], error) {
	msg, ok := raw[key]
	if !ok || string(msg) == "null" {
		return model.Optional[T]{}, nil
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return model.Optional[T]{}, fmt.Errorf("field %s: %w", key, err)
	}
	return model.Some(v), nil
}
