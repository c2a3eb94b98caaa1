package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Wire values of the message type tag. The set is closed: DecodeRequest
// refuses anything else, and the dispatcher matches variants exhaustively, so
// a new message type cannot silently fall through.
const (
	MessageSaveCredential             = "SAVE_CREDENTIAL"
	MessageGetCredentials             = "GET_CREDENTIALS"
	MessageGetCredentialsWithPassword = "GET_CREDENTIALS_WITH_PASSWORD"
	MessageDeleteCredential           = "DELETE_CREDENTIAL"
)

var (
	// ErrUnknownMessage is returned by DecodeRequest for a type tag outside
	// the closed set. The protocol answer is {status:"ignored"}, not an error.
	ErrUnknownMessage = errors.New("unknown message type")

	// ErrMalformedMessage is returned when a known message type is missing a
	// required field (save without data, delete without id).
	ErrMalformedMessage = errors.New("malformed message")
)

// Request is the sealed set of vault protocol messages. Only the four
// variants below implement it.
type Request interface {
	// MessageType returns the wire tag of the variant.
	MessageType() string

	isRequest()
}

// SaveCredentialRequest asks the vault service to encrypt and append a new
// credential for the active user.
type SaveCredentialRequest struct {
	Data   CredentialInput
	UserID string
}

// GetCredentialsRequest asks for the metadata listing (no passwords).
type GetCredentialsRequest struct {
	UserID string
}

// GetCredentialsWithPasswordRequest asks for the fully decrypted listing.
type GetCredentialsWithPasswordRequest struct {
	UserID string
}

// DeleteCredentialRequest asks to remove a credential by id. Deleting an id
// that does not exist is a success.
type DeleteCredentialRequest struct {
	ID     string
	UserID string
}

func (SaveCredentialRequest) MessageType() string             { return MessageSaveCredential }
func (GetCredentialsRequest) MessageType() string             { return MessageGetCredentials }
func (GetCredentialsWithPasswordRequest) MessageType() string { return MessageGetCredentialsWithPassword }
func (DeleteCredentialRequest) MessageType() string           { return MessageDeleteCredential }

func (SaveCredentialRequest) isRequest()             {}
func (GetCredentialsRequest) isRequest()             {}
func (GetCredentialsWithPasswordRequest) isRequest() {}
func (DeleteCredentialRequest) isRequest()           {}

// messageEnvelope is the raw wire shape shared by all message types.
type messageEnvelope struct {
	Type   string           `json:"type"`
	Data   *CredentialInput `json:"data,omitempty"`
	ID     string           `json:"id,omitempty"`
	UserID string           `json:"userId,omitempty"`
}

// DecodeRequest parses a raw protocol message into its typed variant.
// It returns ErrUnknownMessage for tags outside the closed set and
// ErrMalformedMessage when a required field is absent.
func DecodeRequest(raw []byte) (Request, error) {
	var env messageEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode message: %w", err)
	}

	switch env.Type {
	case MessageSaveCredential:
		if env.Data == nil {
			return nil, fmt.Errorf("%w: %s without data", ErrMalformedMessage, env.Type)
		}
		return SaveCredentialRequest{Data: *env.Data, UserID: env.UserID}, nil

	case MessageGetCredentials:
		return GetCredentialsRequest{UserID: env.UserID}, nil

	case MessageGetCredentialsWithPassword:
		return GetCredentialsWithPasswordRequest{UserID: env.UserID}, nil

	case MessageDeleteCredential:
		if env.ID == "" {
			return nil, fmt.Errorf("%w: %s without id", ErrMalformedMessage, env.Type)
		}
		return DeleteCredentialRequest{ID: env.ID, UserID: env.UserID}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, env.Type)
	}
}

// EncodeRequest renders a typed variant back into the wire shape. Used by
// UI-side clients of the message channel.
func EncodeRequest(req Request) ([]byte, error) {
	env := messageEnvelope{Type: req.MessageType()}

	switch r := req.(type) {
	case SaveCredentialRequest:
		data := r.Data
		env.Data = &data
		env.UserID = r.UserID
	case GetCredentialsRequest:
		env.UserID = r.UserID
	case GetCredentialsWithPasswordRequest:
		env.UserID = r.UserID
	case DeleteCredentialRequest:
		env.ID = r.ID
		env.UserID = r.UserID
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownMessage, req)
	}

	return json.Marshal(env)
}
