package jsonfeed

import "encoding/json"

// Attachment is a resource related to an Item. It owns its backing
// Document.
//
// A valid Attachment has both the url and mime_type properties set.
// Attachments with the same title are considered alternative
// representations of the same resource.
type Attachment struct {
	attachmentWrite
}

// NewAttachment returns an Attachment backed by an empty JSON object.
func NewAttachment() *Attachment {
	return &Attachment{newAttachmentWrite(Document{})}
}

func (a *Attachment) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if m == nil {
		return ErrUnexpectedType
	}
	a.doc = Document(m)
	return nil
}

// AttachmentRef is a read-only Attachment view over an object inside
// another document.
type AttachmentRef struct {
	attachmentRead
}

// NewAttachmentRef returns a read-only Attachment view of d.
func NewAttachmentRef(d Document) AttachmentRef {
	return AttachmentRef{newAttachmentRead(d)}
}

// AttachmentMut is a mutable Attachment view over an object inside another
// document. Writes are visible in the ancestor document.
type AttachmentMut struct {
	attachmentWrite
}

// NewAttachmentMut returns a mutable Attachment view of d.
func NewAttachmentMut(d Document) AttachmentMut {
	return AttachmentMut{newAttachmentWrite(d)}
}

type attachmentRead struct {
	doc Document
}

func newAttachmentRead(d Document) attachmentRead {
	return attachmentRead{doc: d}
}

// URL returns the required URL for the attachment.
func (a attachmentRead) URL() (string, bool, error) {
	return getString(a.doc, "url")
}

// MimeType returns the required MIME type (e.g. image/png).
func (a attachmentRead) MimeType() (string, bool, error) {
	return getString(a.doc, "mime_type")
}

// Title returns an optional title for the attachment.
func (a attachmentRead) Title() (string, bool, error) {
	return getString(a.doc, "title")
}

// SizeInBytes returns the optional size of the attachment in bytes.
func (a attachmentRead) SizeInBytes() (uint64, bool, error) {
	return getUint(a.doc, "size_in_bytes")
}

// DurationInSeconds returns the optional duration of the content in
// seconds.
func (a attachmentRead) DurationInSeconds() (uint64, bool, error) {
	return getUint(a.doc, "duration_in_seconds")
}

// AsMap returns the backing Document. Mutating it mutates the attachment.
func (a attachmentRead) AsMap() Document {
	return a.doc
}

// Clone deep-copies the backing Document into a new owned Attachment.
func (a attachmentRead) Clone() *Attachment {
	return &Attachment{newAttachmentWrite(cloneDocument(a.doc))}
}

// IsValid reports whether the JSON data complies with the given revision of
// the JSON Feed spec.
func (a attachmentRead) IsValid(target Version) bool {
	return isValidAttachment(a.doc, target)
}

func (a attachmentRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.doc)
}

type attachmentWrite struct {
	attachmentRead
}

func newAttachmentWrite(d Document) attachmentWrite {
	return attachmentWrite{newAttachmentRead(d)}
}

// SetURL sets the URL, returning the prior raw value if one was replaced.
func (a attachmentWrite) SetURL(url string) any {
	return setString(a.doc, "url", url)
}

// RemoveURL removes the URL, returning the prior raw value if present.
func (a attachmentWrite) RemoveURL() any {
	return removeKey(a.doc, "url")
}

// SetMimeType sets the MIME type.
func (a attachmentWrite) SetMimeType(mimeType string) any {
	return setString(a.doc, "mime_type", mimeType)
}

// RemoveMimeType removes the MIME type.
func (a attachmentWrite) RemoveMimeType() any {
	return removeKey(a.doc, "mime_type")
}

// SetTitle sets the title.
func (a attachmentWrite) SetTitle(title string) any {
	return setString(a.doc, "title", title)
}

// RemoveTitle removes the title.
func (a attachmentWrite) RemoveTitle() any {
	return removeKey(a.doc, "title")
}

// SetSizeInBytes sets the size in bytes.
func (a attachmentWrite) SetSizeInBytes(n uint64) any {
	return setUint(a.doc, "size_in_bytes", n)
}

// RemoveSizeInBytes removes the size in bytes.
func (a attachmentWrite) RemoveSizeInBytes() any {
	return removeKey(a.doc, "size_in_bytes")
}

// SetDurationInSeconds sets the duration in seconds.
func (a attachmentWrite) SetDurationInSeconds(n uint64) any {
	return setUint(a.doc, "duration_in_seconds", n)
}

// RemoveDurationInSeconds removes the duration in seconds.
func (a attachmentWrite) RemoveDurationInSeconds() any {
	return removeKey(a.doc, "duration_in_seconds")
}
