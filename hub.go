package jsonfeed

import "encoding/json"

// Hub is a subscription endpoint which can be used to receive feed update
// notifications. It owns its backing Document.
//
// A valid Hub has both the type and url properties set.
type Hub struct {
	hubWrite
}

// NewHub returns a Hub backed by an empty JSON object.
func NewHub() *Hub {
	return &Hub{newHubWrite(Document{})}
}

func (h *Hub) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if m == nil {
		return ErrUnexpectedType
	}
	h.doc = Document(m)
	return nil
}

// HubRef is a read-only Hub view over an object inside another document.
type HubRef struct {
	hubRead
}

// NewHubRef returns a read-only Hub view of d.
func NewHubRef(d Document) HubRef {
	return HubRef{newHubRead(d)}
}

// HubMut is a mutable Hub view over an object inside another document.
// Writes are visible in the ancestor document.
type HubMut struct {
	hubWrite
}

// NewHubMut returns a mutable Hub view of d.
func NewHubMut(d Document) HubMut {
	return HubMut{newHubWrite(d)}
}

type hubRead struct {
	doc Document
}

func newHubRead(d Document) hubRead {
	return hubRead{doc: d}
}

// HubType returns the required protocol which is used to subscribe with.
// The wire key is "type".
func (h hubRead) HubType() (string, bool, error) {
	return getString(h.doc, "type")
}

// URL returns the required hub-type-specific URL which is used to subscribe
// with.
func (h hubRead) URL() (string, bool, error) {
	return getString(h.doc, "url")
}

// AsMap returns the backing Document. Mutating it mutates the hub.
func (h hubRead) AsMap() Document {
	return h.doc
}

// Clone deep-copies the backing Document into a new owned Hub.
func (h hubRead) Clone() *Hub {
	return &Hub{newHubWrite(cloneDocument(h.doc))}
}

// IsValid reports whether the JSON data complies with the given revision of
// the JSON Feed spec.
func (h hubRead) IsValid(target Version) bool {
	return isValidHub(h.doc, target)
}

func (h hubRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.doc)
}

type hubWrite struct {
	hubRead
}

func newHubWrite(d Document) hubWrite {
	return hubWrite{newHubRead(d)}
}

// SetHubType sets the type, returning the prior raw value if one was
// replaced.
func (h hubWrite) SetHubType(hubType string) any {
	return setString(h.doc, "type", hubType)
}

// RemoveHubType removes the type, returning the prior raw value if present.
func (h hubWrite) RemoveHubType() any {
	return removeKey(h.doc, "type")
}

// SetURL sets the URL.
func (h hubWrite) SetURL(url string) any {
	return setString(h.doc, "url", url)
}

// RemoveURL removes the URL.
func (h hubWrite) RemoveURL() any {
	return removeKey(h.doc, "url")
}
