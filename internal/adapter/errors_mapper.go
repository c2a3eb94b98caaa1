package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// remoteErrorBody is the error shape the account service answers with.
// Either field may carry the human-readable description.
type remoteErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// mapRemoteError converts a non-2xx response into a typed sentinel, keeping
// the service's own description where one was provided.
func mapRemoteError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	status := resp.StatusCode()
	message := remoteMessage(resp)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrRemoteUnavailable, message)
	default:
		return fmt.Errorf("remote service error %d: %s", status, message)
	}
}

func remoteMessage(resp *resty.Response) string {
	var body remoteErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if text := string(resp.Body()); text != "" {
		return text
	}
	return resp.Status()
}
