package errors

import "fmt"

type ParsingError struct {
	ErrorMsg string
}

func (m *ParsingError) Error() string {
	return m.ErrorMsg
}

type BadRequestError struct {
	ErrorMsg string
}

func (m *BadRequestError) Error() string {
	return m.ErrorMsg
}

type RequestError struct {
	ErrorMsg string
}

func (m *RequestError) Error() string {
	return m.ErrorMsg
}

// RemoteRejectionError is returned when a feasibility server answers with a
// non-200 status. Unlike a transport failure it aborts the whole scoring
// call: a rejection usually means a configuration or protocol mismatch that
// must be surfaced loudly instead of degraded into missing scores.
type RemoteRejectionError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *RemoteRejectionError) Error() string {
	return fmt.Sprintf("synthetic feasibility API failed for endpoint %s.\nStatus Code: %d\nReason: (%s)\nResponse content: %v\nResponse text: %s",
		e.Endpoint, e.StatusCode, e.Status, e.Body, string(e.Body))
}
