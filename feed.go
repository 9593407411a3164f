package jsonfeed

import "encoding/json"

// Feed is a list of items with associated metadata. It owns its backing
// Document and is the root of the document tree; every Ref and Mut view
// reached through its getters aliases storage inside this document.
//
// The underlying data is not guaranteed to be a valid JSON Feed. A valid
// Feed has version set to a recognized revision identifier, title set, and
// items set.
type Feed struct {
	feedWrite
}

// NewFeed returns a Feed backed by an empty JSON object.
func NewFeed() *Feed {
	return &Feed{newFeedWrite(Document{})}
}

func (f *Feed) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	// A JSON null unmarshals into a map without error, leaving it nil.
	if m == nil {
		return ErrUnexpectedType
	}
	f.doc = Document(m)
	return nil
}

// FeedRef is a read-only Feed view over a JSON object.
type FeedRef struct {
	feedRead
}

// NewFeedRef returns a read-only Feed view of d.
func NewFeedRef(d Document) FeedRef {
	return FeedRef{newFeedRead(d)}
}

// FeedMut is a mutable Feed view over a JSON object.
type FeedMut struct {
	feedWrite
}

// NewFeedMut returns a mutable Feed view of d.
func NewFeedMut(d Document) FeedMut {
	return FeedMut{newFeedWrite(d)}
}

type feedRead struct {
	doc Document
}

func newFeedRead(d Document) feedRead {
	return feedRead{doc: d}
}

// Version returns the required URL-formatted version identifier declared by
// the feed. An identifier other than the recognized revisions is returned
// as-is as an unrecognized Version.
func (f feedRead) Version() (Version, bool, error) {
	s, ok, err := getString(f.doc, "version")
	return Version(s), ok, err
}

// Title returns the optional name of the feed.
func (f feedRead) Title() (string, bool, error) {
	return getString(f.doc, "title")
}

// HomePageURL returns the optional URL which the feed represents.
func (f feedRead) HomePageURL() (string, bool, error) {
	return getString(f.doc, "home_page_url")
}

// FeedURL returns the optional URL which this feed can be retrieved from.
func (f feedRead) FeedURL() (string, bool, error) {
	return getString(f.doc, "feed_url")
}

// Description returns an optional description of the feed.
func (f feedRead) Description() (string, bool, error) {
	return getString(f.doc, "description")
}

// UserComment returns an optional description intended only for readers of
// the raw JSON.
func (f feedRead) UserComment() (string, bool, error) {
	return getString(f.doc, "user_comment")
}

// NextURL returns an optional pagination URL.
func (f feedRead) NextURL() (string, bool, error) {
	return getString(f.doc, "next_url")
}

// Icon returns an optional URL to an icon for use in a list of items.
func (f feedRead) Icon() (string, bool, error) {
	return getString(f.doc, "icon")
}

// Favicon returns an optional URL to a favicon suitable for a list of
// feeds.
func (f feedRead) Favicon() (string, bool, error) {
	return getString(f.doc, "favicon")
}

// Author returns the optional author.
//
// The author property is deprecated in favor of authors as of JSON Feed
// 1.1.
func (f feedRead) Author() (AuthorRef, bool, error) {
	obj, ok, err := getObject(f.doc, "author")
	if !ok || err != nil {
		return AuthorRef{}, false, err
	}
	return NewAuthorRef(obj), true, nil
}

// Authors returns the optional array of authors.
func (f feedRead) Authors() ([]AuthorRef, bool, error) {
	docs, ok, err := getObjectArray(f.doc, "authors")
	if !ok || err != nil {
		return nil, false, err
	}
	refs := make([]AuthorRef, len(docs))
	for idx, d := range docs {
		refs[idx] = NewAuthorRef(d)
	}
	return refs, true, nil
}

// Language returns the optional RFC 5646 language the feed is written in.
func (f feedRead) Language() (string, bool, error) {
	return getString(f.doc, "language")
}

// Expired reports whether the feed declares that it will never be updated
// again. Absent or false means the feed may be updated in the future.
func (f feedRead) Expired() (expired, present bool, err error) {
	return getBool(f.doc, "expired")
}

// Hubs returns the optional subscription endpoints for feed update
// notifications.
func (f feedRead) Hubs() ([]HubRef, bool, error) {
	docs, ok, err := getObjectArray(f.doc, "hubs")
	if !ok || err != nil {
		return nil, false, err
	}
	refs := make([]HubRef, len(docs))
	for idx, d := range docs {
		refs[idx] = NewHubRef(d)
	}
	return refs, true, nil
}

// Items returns the required array of items.
func (f feedRead) Items() ([]ItemRef, bool, error) {
	docs, ok, err := getObjectArray(f.doc, "items")
	if !ok || err != nil {
		return nil, false, err
	}
	refs := make([]ItemRef, len(docs))
	for idx, d := range docs {
		refs[idx] = NewItemRef(d)
	}
	return refs, true, nil
}

// AsMap returns the backing Document. Mutating it mutates the feed; this is
// the escape hatch for extension fields and anything outside the typed
// schema.
func (f feedRead) AsMap() Document {
	return f.doc
}

// Clone deep-copies the backing Document into a new owned Feed.
func (f feedRead) Clone() *Feed {
	return &Feed{newFeedWrite(cloneDocument(f.doc))}
}

// IsValid reports whether the JSON data complies with the given revision of
// the JSON Feed spec. A feed declaring the earlier revision validates
// against either recognized target; a feed declaring the later revision
// validates only against the later target.
func (f feedRead) IsValid(target Version) bool {
	return isValidFeed(f.doc, target)
}

func (f feedRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.doc)
}

type feedWrite struct {
	feedRead
}

func newFeedWrite(d Document) feedWrite {
	return feedWrite{newFeedRead(d)}
}

// SetVersion sets the version identifier, returning the prior raw value if
// one was replaced.
func (f feedWrite) SetVersion(version Version) any {
	return setString(f.doc, "version", string(version))
}

// RemoveVersion removes the version identifier, returning the prior raw
// value if present.
func (f feedWrite) RemoveVersion() any {
	return removeKey(f.doc, "version")
}

// SetTitle sets the name of the feed.
func (f feedWrite) SetTitle(title string) any {
	return setString(f.doc, "title", title)
}

// RemoveTitle removes the name of the feed.
func (f feedWrite) RemoveTitle() any {
	return removeKey(f.doc, "title")
}

// SetHomePageURL sets the home page URL.
func (f feedWrite) SetHomePageURL(url string) any {
	return setString(f.doc, "home_page_url", url)
}

// RemoveHomePageURL removes the home page URL.
func (f feedWrite) RemoveHomePageURL() any {
	return removeKey(f.doc, "home_page_url")
}

// SetFeedURL sets the feed URL.
func (f feedWrite) SetFeedURL(url string) any {
	return setString(f.doc, "feed_url", url)
}

// RemoveFeedURL removes the feed URL.
func (f feedWrite) RemoveFeedURL() any {
	return removeKey(f.doc, "feed_url")
}

// SetDescription sets the description.
func (f feedWrite) SetDescription(description string) any {
	return setString(f.doc, "description", description)
}

// RemoveDescription removes the description.
func (f feedWrite) RemoveDescription() any {
	return removeKey(f.doc, "description")
}

// SetUserComment sets the user comment.
func (f feedWrite) SetUserComment(comment string) any {
	return setString(f.doc, "user_comment", comment)
}

// RemoveUserComment removes the user comment.
func (f feedWrite) RemoveUserComment() any {
	return removeKey(f.doc, "user_comment")
}

// SetNextURL sets the pagination URL.
func (f feedWrite) SetNextURL(url string) any {
	return setString(f.doc, "next_url", url)
}

// RemoveNextURL removes the pagination URL.
func (f feedWrite) RemoveNextURL() any {
	return removeKey(f.doc, "next_url")
}

// SetIcon sets the icon URL.
func (f feedWrite) SetIcon(url string) any {
	return setString(f.doc, "icon", url)
}

// RemoveIcon removes the icon URL.
func (f feedWrite) RemoveIcon() any {
	return removeKey(f.doc, "icon")
}

// SetFavicon sets the favicon URL.
func (f feedWrite) SetFavicon(url string) any {
	return setString(f.doc, "favicon", url)
}

// RemoveFavicon removes the favicon URL.
func (f feedWrite) RemoveFavicon() any {
	return removeKey(f.doc, "favicon")
}

// AuthorMut returns the optional author as a mutable view.
func (f feedWrite) AuthorMut() (AuthorMut, bool, error) {
	obj, ok, err := getObject(f.doc, "author")
	if !ok || err != nil {
		return AuthorMut{}, false, err
	}
	return NewAuthorMut(obj), true, nil
}

// SetAuthor adopts the author's backing Document as the feed's author. The
// argument must not be used afterwards.
func (f feedWrite) SetAuthor(author *Author) any {
	return setObject(f.doc, "author", author.doc)
}

// RemoveAuthor removes the author.
func (f feedWrite) RemoveAuthor() any {
	return removeKey(f.doc, "author")
}

// AuthorsMut returns the optional array of authors as mutable views.
func (f feedWrite) AuthorsMut() ([]AuthorMut, bool, error) {
	docs, ok, err := getObjectArray(f.doc, "authors")
	if !ok || err != nil {
		return nil, false, err
	}
	muts := make([]AuthorMut, len(docs))
	for idx, d := range docs {
		muts[idx] = NewAuthorMut(d)
	}
	return muts, true, nil
}

// SetAuthors adopts the authors' backing Documents as the feed's authors.
// The arguments must not be used afterwards.
func (f feedWrite) SetAuthors(authors []*Author) any {
	docs := make([]Document, len(authors))
	for idx, a := range authors {
		docs[idx] = a.doc
	}
	return setObjectArray(f.doc, "authors", docs)
}

// RemoveAuthors removes the authors.
func (f feedWrite) RemoveAuthors() any {
	return removeKey(f.doc, "authors")
}

// SetLanguage sets the language.
func (f feedWrite) SetLanguage(language string) any {
	return setString(f.doc, "language", language)
}

// RemoveLanguage removes the language.
func (f feedWrite) RemoveLanguage() any {
	return removeKey(f.doc, "language")
}

// SetExpired sets the expired flag.
func (f feedWrite) SetExpired(expired bool) any {
	return setBool(f.doc, "expired", expired)
}

// RemoveExpired removes the expired flag.
func (f feedWrite) RemoveExpired() any {
	return removeKey(f.doc, "expired")
}

// HubsMut returns the optional hubs as mutable views.
func (f feedWrite) HubsMut() ([]HubMut, bool, error) {
	docs, ok, err := getObjectArray(f.doc, "hubs")
	if !ok || err != nil {
		return nil, false, err
	}
	muts := make([]HubMut, len(docs))
	for idx, d := range docs {
		muts[idx] = NewHubMut(d)
	}
	return muts, true, nil
}

// SetHubs adopts the hubs' backing Documents as the feed's hubs. The
// arguments must not be used afterwards.
func (f feedWrite) SetHubs(hubs []*Hub) any {
	docs := make([]Document, len(hubs))
	for idx, h := range hubs {
		docs[idx] = h.doc
	}
	return setObjectArray(f.doc, "hubs", docs)
}

// RemoveHubs removes the hubs.
func (f feedWrite) RemoveHubs() any {
	return removeKey(f.doc, "hubs")
}

// ItemsMut returns the items as mutable views.
func (f feedWrite) ItemsMut() ([]ItemMut, bool, error) {
	docs, ok, err := getObjectArray(f.doc, "items")
	if !ok || err != nil {
		return nil, false, err
	}
	muts := make([]ItemMut, len(docs))
	for idx, d := range docs {
		muts[idx] = NewItemMut(d)
	}
	return muts, true, nil
}

// SetItems adopts the items' backing Documents as the feed's items. The
// arguments must not be used afterwards.
func (f feedWrite) SetItems(items []*Item) any {
	docs := make([]Document, len(items))
	for idx, it := range items {
		docs[idx] = it.doc
	}
	return setObjectArray(f.doc, "items", docs)
}

// RemoveItems removes the items.
func (f feedWrite) RemoveItems() any {
	return removeKey(f.doc, "items")
}
