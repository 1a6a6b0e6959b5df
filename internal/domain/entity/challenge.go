package entity

import (
	"bytes"
	"encoding/json"
)

// Challenge is a free-form record owned by a user.
// UserID is a weak reference: it is checked when the challenge is created and
// never enforced afterwards.
//
// Content fields hold whatever JSON value the client sent. A nil field was
// not sent or was null.
type Challenge struct {
	ChallengeID string
	UserID      string
	Text        json.RawMessage
	Description json.RawMessage
	Dataset     json.RawMessage
	Picture     json.RawMessage
	Result      json.RawMessage
}

// Clone returns a deep copy, content bytes included.
func (c *Challenge) Clone() *Challenge {
	out := *c
	out.Text = cloneRaw(c.Text)
	out.Description = cloneRaw(c.Description)
	out.Dataset = cloneRaw(c.Dataset)
	out.Picture = cloneRaw(c.Picture)
	out.Result = cloneRaw(c.Result)

	return &out
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}

	return append(json.RawMessage(nil), raw...)
}

// Content normalizes a client value: absent and null both become nil.
func Content(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}

	return raw
}
