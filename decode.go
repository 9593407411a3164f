package jsonfeed

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Decode reads a JSON document from r and returns it as a Feed. Malformed
// JSON, including trailing data after the document, fails with a
// *DecodeError; a well-formed document whose top-level value is not an
// object fails with ErrUnexpectedType.
//
// No validation runs during decoding; call IsValid separately.
func Decode(r io.Reader) (*Feed, error) {
	dec := json.NewDecoder(r)
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &DecodeError{Err: err}
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after document")
		}
		return nil, &DecodeError{Err: err}
	}
	return FromValue(v)
}

// Unmarshal decodes a JSON document from b and returns it as a Feed. Error
// behavior matches Decode.
func Unmarshal(b []byte) (*Feed, error) {
	return Decode(bytes.NewReader(b))
}

// UnmarshalString decodes a JSON document from s and returns it as a Feed.
// Error behavior matches Decode.
func UnmarshalString(s string) (*Feed, error) {
	return Decode(bytes.NewReader([]byte(s)))
}

// FromValue adopts an already-parsed generic JSON value as a Feed without
// copying. The value must be a JSON object; anything else fails with
// ErrUnexpectedType.
func FromValue(v any) (*Feed, error) {
	obj, ok := asObject(v)
	if !ok || obj == nil {
		return nil, ErrUnexpectedType
	}
	return &Feed{newFeedWrite(obj)}, nil
}
