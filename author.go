package jsonfeed

import "encoding/json"

// Author is an author of a feed or of an item in a feed. It owns its
// backing Document.
//
// A valid Author has at least one of the name, url, or avatar properties
// set.
type Author struct {
	authorWrite
}

// NewAuthor returns an Author backed by an empty JSON object.
func NewAuthor() *Author {
	return &Author{newAuthorWrite(Document{})}
}

func (a *Author) UnmarshalJSON(b []byte) error {
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

// AuthorRef is a read-only Author view over an object inside another
// document.
type AuthorRef struct {
	authorRead
}

// NewAuthorRef returns a read-only Author view of d.
func NewAuthorRef(d Document) AuthorRef {
	return AuthorRef{newAuthorRead(d)}
}

// AuthorMut is a mutable Author view over an object inside another
// document. Writes are visible in the ancestor document.
type AuthorMut struct {
	authorWrite
}

// NewAuthorMut returns a mutable Author view of d.
func NewAuthorMut(d Document) AuthorMut {
	return AuthorMut{newAuthorWrite(d)}
}

type authorRead struct {
	doc Document
}

func newAuthorRead(d Document) authorRead {
	return authorRead{doc: d}
}

// Name returns the optional author's name.
func (a authorRead) Name() (string, bool, error) {
	return getString(a.doc, "name")
}

// URL returns an optional URL for a site which represents the author.
func (a authorRead) URL() (string, bool, error) {
	return getString(a.doc, "url")
}

// Avatar returns an optional URL for an image which represents the author.
func (a authorRead) Avatar() (string, bool, error) {
	return getString(a.doc, "avatar")
}

// AsMap returns the backing Document. Mutating it mutates the author.
func (a authorRead) AsMap() Document {
	return a.doc
}

// Clone deep-copies the backing Document into a new owned Author.
func (a authorRead) Clone() *Author {
	return &Author{newAuthorWrite(cloneDocument(a.doc))}
}

// IsValid reports whether the JSON data complies with the given revision of
// the JSON Feed spec.
func (a authorRead) IsValid(target Version) bool {
	return isValidAuthor(a.doc, target)
}

func (a authorRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.doc)
}

type authorWrite struct {
	authorRead
}

func newAuthorWrite(d Document) authorWrite {
	return authorWrite{newAuthorRead(d)}
}

// SetName sets the name, returning the prior raw value if one was replaced.
func (a authorWrite) SetName(name string) any {
	return setString(a.doc, "name", name)
}

// RemoveName removes the name, returning the prior raw value if present.
func (a authorWrite) RemoveName() any {
	return removeKey(a.doc, "name")
}

// SetURL sets the URL.
func (a authorWrite) SetURL(url string) any {
	return setString(a.doc, "url", url)
}

// RemoveURL removes the URL.
func (a authorWrite) RemoveURL() any {
	return removeKey(a.doc, "url")
}

// SetAvatar sets the avatar URL.
func (a authorWrite) SetAvatar(avatar string) any {
	return setString(a.doc, "avatar", avatar)
}

// RemoveAvatar removes the avatar URL.
func (a authorWrite) RemoveAvatar() any {
	return removeKey(a.doc, "avatar")
}
