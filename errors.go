package jsonfeed

import "errors"

// ErrUnexpectedType is returned when a property exists but its JSON value
// has a different type than the accessor expects. For instance, reading
// title from {"title": 42} fails with ErrUnexpectedType, as does an array
// accessor encountering an element of the wrong type.
//
// A missing property is not an error.
var ErrUnexpectedType = errors.New("jsonfeed: unexpected JSON type")

// DecodeError wraps a syntax or structural error reported by the JSON
// parser while decoding a feed document. It is distinct from
// ErrUnexpectedType, which concerns well-formed JSON of the wrong shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "jsonfeed: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
