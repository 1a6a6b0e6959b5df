package mongodb

import (
	"encoding/json"

	"challengehub/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// contentValue converts a client JSON value into the value stored in the
// document. ok is false for absent or null values, which are not stored.
func contentValue(raw json.RawMessage) (value any, ok bool, err error) {
	if len(raw) == 0 {
		return nil, false, nil
	}

	wrapped := make([]byte, 0, len(raw)+6)
	wrapped = append(wrapped, `{"v":`...)
	wrapped = append(wrapped, raw...)
	wrapped = append(wrapped, '}')

	var doc bson.D
	if err := bson.UnmarshalExtJSON(wrapped, false, &doc); err != nil {
		return nil, false, errors.Wrap(err, "convert content to bson")
	}
	if len(doc) != 1 || doc[0].Value == nil {
		return nil, false, nil
	}

	return doc[0].Value, true, nil
}

// contentJSON renders a stored value as relaxed extended JSON, so numbers,
// strings, arrays and objects come back as plain JSON. Missing and null
// values give nil.
func contentJSON(value bson.RawValue) (json.RawMessage, error) {
	if value.Type == 0 || value.Type == bson.TypeNull || value.Type == bson.TypeUndefined {
		return nil, nil
	}

	ext, err := bson.MarshalExtJSON(bson.D{{Key: "v", Value: value}}, false, false)
	if err != nil {
		return nil, errors.Wrap(err, "convert content to json")
	}

	var wrapped struct {
		V json.RawMessage `json:"v"`
	}
	if err := json.Unmarshal(ext, &wrapped); err != nil {
		return nil, errors.Wrap(err, "convert content to json")
	}

	return wrapped.V, nil
}
