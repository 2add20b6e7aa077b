package client

// Error is the normalized failure produced by the API client. Transport
// failures, unparsable bodies, and application-level errors all surface as
// this one type so callers can route a single message to the error banner.
type Error struct {
	// Message is the human-readable failure text, extracted with the
	// precedence: server error field -> raw body text -> status text ->
	// generic fallback.
	Message string
	// Status is the HTTP status code, 0 when the request never completed.
	Status int
	// Payload is the parsed error body, when the server returned valid JSON.
	Payload any
}

func (e *Error) Error() string {
	return e.Message
}
