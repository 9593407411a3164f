package jsonfeed

import "encoding/json"

// Item is a single entry (blog post, story, episode) in a feed's item list.
// It owns its backing Document.
//
// A valid Item has the id property set and at least one of content_html or
// content_text set.
type Item struct {
	itemWrite
}

// NewItem returns an Item backed by an empty JSON object.
func NewItem() *Item {
	return &Item{newItemWrite(Document{})}
}

func (i *Item) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if m == nil {
		return ErrUnexpectedType
	}
	i.doc = Document(m)
	return nil
}

// ItemRef is a read-only Item view over an object inside another document,
// typically one slot of a feed's items array.
type ItemRef struct {
	itemRead
}

// NewItemRef returns a read-only Item view of d.
func NewItemRef(d Document) ItemRef {
	return ItemRef{newItemRead(d)}
}

// ItemMut is a mutable Item view over an object inside another document.
// Writes are visible in the ancestor document.
type ItemMut struct {
	itemWrite
}

// NewItemMut returns a mutable Item view of d.
func NewItemMut(d Document) ItemMut {
	return ItemMut{newItemWrite(d)}
}

type itemRead struct {
	doc Document
}

func newItemRead(d Document) itemRead {
	return itemRead{doc: d}
}

// ID returns the required unique identifier for the item.
//
// The ID should be unique across all items which have ever appeared in the
// feed; an item with the same ID as an earlier item is the same item. JSON
// Feed 1.0 permitted non-string IDs, but this model supports only strings,
// as JSON Feed 1.1 strongly suggests. Non-string IDs can still be read
// through AsMap.
func (i itemRead) ID() (string, bool, error) {
	return getString(i.doc, "id")
}

// URL returns the optional URL which the item represents.
func (i itemRead) URL() (string, bool, error) {
	return getString(i.doc, "url")
}

// ExternalURL returns an optional external URL related to the item.
func (i itemRead) ExternalURL() (string, bool, error) {
	return getString(i.doc, "external_url")
}

// Title returns an optional title for the item.
func (i itemRead) Title() (string, bool, error) {
	return getString(i.doc, "title")
}

// ContentHTML returns the optional HTML content.
func (i itemRead) ContentHTML() (string, bool, error) {
	return getString(i.doc, "content_html")
}

// ContentText returns the optional plain text content.
func (i itemRead) ContentText() (string, bool, error) {
	return getString(i.doc, "content_text")
}

// Summary returns an optional summary of the item.
func (i itemRead) Summary() (string, bool, error) {
	return getString(i.doc, "summary")
}

// Image returns an optional URL of an image representing the item.
func (i itemRead) Image() (string, bool, error) {
	return getString(i.doc, "image")
}

// BannerImage returns an optional URL of a banner image for the item.
func (i itemRead) BannerImage() (string, bool, error) {
	return getString(i.doc, "banner_image")
}

// DatePublished returns the publication date in RFC 3339 format.
func (i itemRead) DatePublished() (string, bool, error) {
	return getString(i.doc, "date_published")
}

// DateModified returns the modification date in RFC 3339 format.
func (i itemRead) DateModified() (string, bool, error) {
	return getString(i.doc, "date_modified")
}

// Author returns the optional author.
//
// The author property is deprecated in favor of authors as of JSON Feed
// 1.1.
func (i itemRead) Author() (AuthorRef, bool, error) {
	obj, ok, err := getObject(i.doc, "author")
	if !ok || err != nil {
		return AuthorRef{}, false, err
	}
	return NewAuthorRef(obj), true, nil
}

// Authors returns the optional array of authors.
func (i itemRead) Authors() ([]AuthorRef, bool, error) {
	docs, ok, err := getObjectArray(i.doc, "authors")
	if !ok || err != nil {
		return nil, false, err
	}
	refs := make([]AuthorRef, len(docs))
	for idx, d := range docs {
		refs[idx] = NewAuthorRef(d)
	}
	return refs, true, nil
}

// Tags returns the optional array of plain text tags.
func (i itemRead) Tags() ([]string, bool, error) {
	return getStringArray(i.doc, "tags")
}

// Language returns the optional RFC 5646 language the item is written in.
func (i itemRead) Language() (string, bool, error) {
	return getString(i.doc, "language")
}

// Attachments returns the optional array of resources related to the item.
func (i itemRead) Attachments() ([]AttachmentRef, bool, error) {
	docs, ok, err := getObjectArray(i.doc, "attachments")
	if !ok || err != nil {
		return nil, false, err
	}
	refs := make([]AttachmentRef, len(docs))
	for idx, d := range docs {
		refs[idx] = NewAttachmentRef(d)
	}
	return refs, true, nil
}

// AsMap returns the backing Document. Mutating it mutates the item.
func (i itemRead) AsMap() Document {
	return i.doc
}

// Clone deep-copies the backing Document into a new owned Item.
func (i itemRead) Clone() *Item {
	return &Item{newItemWrite(cloneDocument(i.doc))}
}

// IsValid reports whether the JSON data complies with the given revision of
// the JSON Feed spec.
func (i itemRead) IsValid(target Version) bool {
	return isValidItem(i.doc, target)
}

func (i itemRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.doc)
}

type itemWrite struct {
	itemRead
}

func newItemWrite(d Document) itemWrite {
	return itemWrite{newItemRead(d)}
}

// SetID sets the ID, returning the prior raw value if one was replaced.
func (i itemWrite) SetID(id string) any {
	return setString(i.doc, "id", id)
}

// RemoveID removes the ID, returning the prior raw value if present.
func (i itemWrite) RemoveID() any {
	return removeKey(i.doc, "id")
}

// SetURL sets the URL.
func (i itemWrite) SetURL(url string) any {
	return setString(i.doc, "url", url)
}

// RemoveURL removes the URL.
func (i itemWrite) RemoveURL() any {
	return removeKey(i.doc, "url")
}

// SetExternalURL sets the external URL.
func (i itemWrite) SetExternalURL(url string) any {
	return setString(i.doc, "external_url", url)
}

// RemoveExternalURL removes the external URL.
func (i itemWrite) RemoveExternalURL() any {
	return removeKey(i.doc, "external_url")
}

// SetTitle sets the title.
func (i itemWrite) SetTitle(title string) any {
	return setString(i.doc, "title", title)
}

// RemoveTitle removes the title.
func (i itemWrite) RemoveTitle() any {
	return removeKey(i.doc, "title")
}

// SetContentHTML sets the HTML content.
func (i itemWrite) SetContentHTML(content string) any {
	return setString(i.doc, "content_html", content)
}

// RemoveContentHTML removes the HTML content.
func (i itemWrite) RemoveContentHTML() any {
	return removeKey(i.doc, "content_html")
}

// SetContentText sets the plain text content.
func (i itemWrite) SetContentText(content string) any {
	return setString(i.doc, "content_text", content)
}

// RemoveContentText removes the plain text content.
func (i itemWrite) RemoveContentText() any {
	return removeKey(i.doc, "content_text")
}

// SetSummary sets the summary.
func (i itemWrite) SetSummary(summary string) any {
	return setString(i.doc, "summary", summary)
}

// RemoveSummary removes the summary.
func (i itemWrite) RemoveSummary() any {
	return removeKey(i.doc, "summary")
}

// SetImage sets the image URL.
func (i itemWrite) SetImage(url string) any {
	return setString(i.doc, "image", url)
}

// RemoveImage removes the image URL.
func (i itemWrite) RemoveImage() any {
	return removeKey(i.doc, "image")
}

// SetBannerImage sets the banner image URL.
func (i itemWrite) SetBannerImage(url string) any {
	return setString(i.doc, "banner_image", url)
}

// RemoveBannerImage removes the banner image URL.
func (i itemWrite) RemoveBannerImage() any {
	return removeKey(i.doc, "banner_image")
}

// SetDatePublished sets the publication date.
func (i itemWrite) SetDatePublished(date string) any {
	return setString(i.doc, "date_published", date)
}

// RemoveDatePublished removes the publication date.
func (i itemWrite) RemoveDatePublished() any {
	return removeKey(i.doc, "date_published")
}

// SetDateModified sets the modification date.
func (i itemWrite) SetDateModified(date string) any {
	return setString(i.doc, "date_modified", date)
}

// RemoveDateModified removes the modification date.
func (i itemWrite) RemoveDateModified() any {
	return removeKey(i.doc, "date_modified")
}

// AuthorMut returns the optional author as a mutable view.
func (i itemWrite) AuthorMut() (AuthorMut, bool, error) {
	obj, ok, err := getObject(i.doc, "author")
	if !ok || err != nil {
		return AuthorMut{}, false, err
	}
	return NewAuthorMut(obj), true, nil
}

// SetAuthor adopts the author's backing Document as the item's author. The
// argument must not be used afterwards.
func (i itemWrite) SetAuthor(author *Author) any {
	return setObject(i.doc, "author", author.doc)
}

// RemoveAuthor removes the author.
func (i itemWrite) RemoveAuthor() any {
	return removeKey(i.doc, "author")
}

// AuthorsMut returns the optional array of authors as mutable views.
func (i itemWrite) AuthorsMut() ([]AuthorMut, bool, error) {
	docs, ok, err := getObjectArray(i.doc, "authors")
	if !ok || err != nil {
		return nil, false, err
	}
	muts := make([]AuthorMut, len(docs))
	for idx, d := range docs {
		muts[idx] = NewAuthorMut(d)
	}
	return muts, true, nil
}

// SetAuthors adopts the authors' backing Documents as the item's authors.
// The arguments must not be used afterwards.
func (i itemWrite) SetAuthors(authors []*Author) any {
	docs := make([]Document, len(authors))
	for idx, a := range authors {
		docs[idx] = a.doc
	}
	return setObjectArray(i.doc, "authors", docs)
}

// RemoveAuthors removes the authors.
func (i itemWrite) RemoveAuthors() any {
	return removeKey(i.doc, "authors")
}

// SetTags sets the tags.
func (i itemWrite) SetTags(tags []string) any {
	return setStringArray(i.doc, "tags", tags)
}

// RemoveTags removes the tags.
func (i itemWrite) RemoveTags() any {
	return removeKey(i.doc, "tags")
}

// SetLanguage sets the language.
func (i itemWrite) SetLanguage(language string) any {
	return setString(i.doc, "language", language)
}

// RemoveLanguage removes the language.
func (i itemWrite) RemoveLanguage() any {
	return removeKey(i.doc, "language")
}

// AttachmentsMut returns the optional array of attachments as mutable
// views.
func (i itemWrite) AttachmentsMut() ([]AttachmentMut, bool, error) {
	docs, ok, err := getObjectArray(i.doc, "attachments")
	if !ok || err != nil {
		return nil, false, err
	}
	muts := make([]AttachmentMut, len(docs))
	for idx, d := range docs {
		muts[idx] = NewAttachmentMut(d)
	}
	return muts, true, nil
}

// SetAttachments adopts the attachments' backing Documents as the item's
// attachments. The arguments must not be used afterwards.
func (i itemWrite) SetAttachments(attachments []*Attachment) any {
	docs := make([]Document, len(attachments))
	for idx, a := range attachments {
		docs[idx] = a.doc
	}
	return setObjectArray(i.doc, "attachments", docs)
}

// RemoveAttachments removes the attachments.
func (i itemWrite) RemoveAttachments() any {
	return removeKey(i.doc, "attachments")
}
