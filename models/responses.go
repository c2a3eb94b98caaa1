package models

// Protocol response statuses. Every operation answers with exactly one of
// these; "ignored" is reserved for messages the service does not recognize.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusIgnored = "ignored"
)

// Response is the tagged result of one protocol operation.
type Response struct {
	// Status is one of StatusOK, StatusError, StatusIgnored.
	Status string `json:"status"`

	// Data carries the operation result for listings; nil for save/delete
	// and for non-ok responses.
	Data any `json:"data,omitempty"`

	// Error holds the failure description when Status is StatusError.
	Error string `json:"error,omitempty"`
}

// OKResponse builds a successful response, optionally carrying data.
func OKResponse(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// ErrorResponse builds a failure response from err.
func ErrorResponse(err error) Response {
	resp := Response{Status: StatusError}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

// IgnoredResponse builds the answer for unrecognized or malformed messages.
func IgnoredResponse() Response {
	return Response{Status: StatusIgnored}
}
