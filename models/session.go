package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// StringlyID is a user identifier that tolerates both JSON strings and JSON
// numbers. Account services disagree on whether ids are numeric; everything
// is coerced to a string before it becomes a storage namespace.
type StringlyID string

// UnmarshalJSON implements json.Unmarshaler. Numbers are formatted without
// an exponent so that the same account always maps to the same vault key.
func (s *StringlyID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringlyID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	if i, err := num.Int64(); err == nil {
		*s = StringlyID(strconv.FormatInt(i, 10))
		return nil
	}
	*s = StringlyID(num.String())
	return nil
}

// SessionUser is the user object persisted with the session. Which identifier
// field is populated depends on the account service; Identifier picks the
// first usable one.
type SessionUser struct {
	ID       StringlyID `json:"id,omitempty"`
	LegacyID StringlyID `json:"_id,omitempty"`
	UID      StringlyID `json:"uid,omitempty"`
	Email    string     `json:"email,omitempty"`
	Name     string     `json:"name,omitempty"`
}

// Identifier returns the first non-empty of id, _id, uid, email, as a plain
// string, or "" when the user carries no identifier at all.
func (u SessionUser) Identifier() string {
	for _, candidate := range []string{string(u.ID), string(u.LegacyID), string(u.UID), u.Email} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// Session is the persisted "current session": the remote access token plus
// the user object it was issued for. A session with both parts present is
// considered valid.
type Session struct {
	Token string       `json:"token"`
	User  *SessionUser `json:"user"`
}

// Valid reports whether the session can be used for both identity resolution
// and remote calls.
func (s Session) Valid() bool {
	return s.Token != "" && s.User != nil
}
