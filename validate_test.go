package jsonfeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalFeedJSON(version string) string {
	return `{
		"version": "` + version + `",
		"title": "Lorem ipsum dolor sit amet.",
		"items": [
			{
				"id": "2bcb497d-c40b-4493-b5ae-bc63c74b48fa",
				"content_html": "Vestibulum non magna vitae tortor.",
				"url": "https://example.org/vestibulum-non"
			}
		]
	}`
}

func TestFeedIsValidDeclaredVersionGates(t *testing.T) {
	tests := []struct {
		name     string
		declared string
		target   Version
		want     bool
	}{
		{"declared 1 against 1", string(Version1), Version1, true},
		{"declared 1 against 1.1", string(Version1), Version1_1, true},
		{"declared 1.1 against 1.1", string(Version1_1), Version1_1, true},
		{"declared 1.1 against 1", string(Version1_1), Version1, false},
		{"declared unknown against 1", "https://jsonfeed.org/version/2", Version1, false},
		{"declared unknown against 1.1", "https://jsonfeed.org/version/2", Version1_1, false},
		{"unrecognized target", string(Version1), Version("https://jsonfeed.org/version/2"), false},
		{"empty target", string(Version1), Version(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := mustFeed(t, minimalFeedJSON(tt.declared))
			assert.Equal(t, tt.want, feed.IsValid(tt.target))
		})
	}
}

func TestFeedIsValidDeclaredVersionGatesWithoutLaterFields(t *testing.T) {
	// A feed declaring 1.1 but using no 1.1-only field still fails against
	// the 1.0 target; the declared string alone is the gate.
	feed := mustFeed(t, minimalFeedJSON(string(Version1_1)))
	assert.True(t, feed.IsValid(Version1_1))
	assert.False(t, feed.IsValid(Version1))
}

func TestFeedIsValidRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{
			name: "empty items with title and version",
			src:  `{"version": "https://jsonfeed.org/version/1.1", "title": "T", "items": []}`,
			want: true,
		},
		{
			name: "missing items",
			src:  `{"version": "https://jsonfeed.org/version/1.1", "title": "T"}`,
			want: false,
		},
		{
			name: "missing title",
			src:  `{"version": "https://jsonfeed.org/version/1.1", "items": []}`,
			want: false,
		},
		{
			name: "missing version",
			src:  `{"title": "T", "items": []}`,
			want: false,
		},
		{
			name: "non-string version",
			src:  `{"version": 1.1, "title": "T", "items": []}`,
			want: false,
		},
		{
			name: "non-string title",
			src:  `{"version": "https://jsonfeed.org/version/1.1", "title": 7, "items": []}`,
			want: false,
		},
		{
			name: "items not an array",
			src:  `{"version": "https://jsonfeed.org/version/1.1", "title": "T", "items": {}}`,
			want: false,
		},
		{
			name: "item not an object",
			src:  `{"version": "https://jsonfeed.org/version/1.1", "title": "T", "items": ["x"]}`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := mustFeed(t, tt.src)
			assert.Equal(t, tt.want, feed.IsValid(Version1_1))
		})
	}
}

func TestFeedIsValidOptionalFieldTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"home_page_url number", "home_page_url", `3`},
		{"description bool", "description", `true`},
		{"expired string", "expired", `"yes"`},
		{"author string", "author", `"not an object"`},
		{"authors object", "authors", `{}`},
		{"hubs object", "hubs", `{}`},
		{"language number", "language", `5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := mustFeed(t, `{
				"version": "https://jsonfeed.org/version/1.1",
				"title": "T",
				"items": [],
				"`+tt.key+`": `+tt.val+`
			}`)
			assert.False(t, feed.IsValid(Version1_1))
		})
	}
}

func TestFeedIsValidLaterOnlyKeys(t *testing.T) {
	// authors and language are permitted keys only from the 1.1 revision
	// onward; the permitted set comes from the target revision.
	feed := mustFeed(t, `{
		"version": "https://jsonfeed.org/version/1",
		"title": "T",
		"language": "en-US",
		"authors": [{"name": "Jane"}],
		"items": []
	}`)
	assert.True(t, feed.IsValid(Version1_1))
	assert.False(t, feed.IsValid(Version1))
}

func TestFeedIsValidUnknownKey(t *testing.T) {
	feed := mustFeed(t, `{
		"version": "https://jsonfeed.org/version/1.1",
		"title": "T",
		"items": [],
		"foo": 1
	}`)
	assert.False(t, feed.IsValid(Version1_1))
}

func TestFeedIsValidExtensionKeys(t *testing.T) {
	feed := mustFeed(t, `{
		"version": "https://jsonfeed.org/version/1.1",
		"title": "T",
		"_foo": {"anything": ["goes", 1, true]},
		"items": [
			{"id": "1", "content_text": "x", "_bar": 2}
		]
	}`)
	assert.True(t, feed.IsValid(Version1_1))
}

func TestFeedIsValidAuthorShapeCheckedOnly(t *testing.T) {
	// A feed-level author is type-checked but not validated recursively; an
	// empty author object does not invalidate the feed.
	feed := mustFeed(t, `{
		"version": "https://jsonfeed.org/version/1.1",
		"title": "T",
		"author": {},
		"items": []
	}`)
	assert.True(t, feed.IsValid(Version1_1))
}

func TestFeedIsValidHubsRecursively(t *testing.T) {
	feed := mustFeed(t, `{
		"version": "https://jsonfeed.org/version/1.1",
		"title": "T",
		"hubs": [{"type": "WebSub"}],
		"items": []
	}`)
	assert.False(t, feed.IsValid(Version1_1), "hub without url is invalid")

	feed.AsMap()["hubs"] = []any{map[string]any{"type": "WebSub", "url": "https://h.example.org/"}}
	assert.True(t, feed.IsValid(Version1_1))
}

func TestFeedIsValidItemsRecursively(t *testing.T) {
	feed := mustFeed(t, `{
		"version": "https://jsonfeed.org/version/1.1",
		"title": "T",
		"items": [
			{"id": "1", "content_text": "x"},
			{"id": "2"}
		]
	}`)
	assert.False(t, feed.IsValid(Version1_1), "one invalid item invalidates the feed")
}

func TestItemIsValid(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want bool
	}{
		{
			name: "content text only",
			doc:  Document{"id": "1", "content_text": "x"},
			want: true,
		},
		{
			name: "content html only",
			doc:  Document{"id": "1", "content_html": "<p>x</p>"},
			want: true,
		},
		{
			name: "both contents",
			doc:  Document{"id": "1", "content_html": "<p>x</p>", "content_text": "x"},
			want: true,
		},
		{
			name: "no content",
			doc: Document{
				"id": "1", "title": "t", "url": "https://example.org/1",
				"summary": "s", "date_published": "2022-01-01T00:00:00Z",
			},
			want: false,
		},
		{
			name: "missing id",
			doc:  Document{"content_text": "x"},
			want: false,
		},
		{
			name: "non-string id",
			doc:  Document{"id": 1.0, "content_text": "x"},
			want: false,
		},
		{
			name: "non-string tag",
			doc:  Document{"id": "1", "content_text": "x", "tags": []any{"a", 1.0}},
			want: false,
		},
		{
			name: "unknown key",
			doc:  Document{"id": "1", "content_text": "x", "foo": "bar"},
			want: false,
		},
		{
			name: "extension key",
			doc:  Document{"id": "1", "content_text": "x", "_foo": "bar"},
			want: true,
		},
		{
			name: "invalid nested author",
			doc:  Document{"id": "1", "content_text": "x", "author": map[string]any{}},
			want: false,
		},
		{
			name: "valid nested author",
			doc:  Document{"id": "1", "content_text": "x", "author": map[string]any{"name": "Jane"}},
			want: true,
		},
		{
			name: "invalid author in authors",
			doc: Document{
				"id": "1", "content_text": "x",
				"authors": []any{map[string]any{"name": "Jane"}, map[string]any{}},
			},
			want: false,
		},
		{
			name: "invalid attachment",
			doc: Document{
				"id": "1", "content_text": "x",
				"attachments": []any{map[string]any{"url": "https://example.org/a.mp3"}},
			},
			want: false,
		},
		{
			name: "valid attachment",
			doc: Document{
				"id": "1", "content_text": "x",
				"attachments": []any{map[string]any{
					"url": "https://example.org/a.mp3", "mime_type": "audio/mpeg",
				}},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewItemRef(tt.doc).IsValid(Version1_1))
		})
	}
}

func TestItemIsValidLaterOnlyKeys(t *testing.T) {
	doc := Document{"id": "1", "content_text": "x", "language": "en-US"}
	assert.True(t, NewItemRef(doc).IsValid(Version1_1))
	assert.False(t, NewItemRef(doc).IsValid(Version1))
}

func TestAuthorIsValid(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want bool
	}{
		{name: "name only", doc: Document{"name": "Jane"}, want: true},
		{name: "url only", doc: Document{"url": "https://example.org/"}, want: true},
		{name: "avatar only", doc: Document{"avatar": "https://example.org/a.png"}, want: true},
		{name: "empty", doc: Document{}, want: false},
		{name: "only extension key", doc: Document{"_x": 1.0}, want: false},
		{name: "non-string name", doc: Document{"name": 1.0}, want: false},
		{name: "unknown key", doc: Document{"name": "Jane", "email": "j@example.org"}, want: false},
		{name: "extension key", doc: Document{"name": "Jane", "_email": "j@example.org"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAuthorRef(tt.doc).IsValid(Version1))
			assert.Equal(t, tt.want, NewAuthorRef(tt.doc).IsValid(Version1_1))
		})
	}
}

func TestHubIsValid(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want bool
	}{
		{name: "complete", doc: Document{"type": "WebSub", "url": "https://h.example.org/"}, want: true},
		{name: "missing url", doc: Document{"type": "WebSub"}, want: false},
		{name: "missing type", doc: Document{"url": "https://h.example.org/"}, want: false},
		{name: "unknown key", doc: Document{"type": "WebSub", "url": "https://h.example.org/", "extra": 1.0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewHubRef(tt.doc).IsValid(Version1_1))
		})
	}
}

func TestAttachmentIsValid(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want bool
	}{
		{
			name: "complete",
			doc: Document{
				"url": "https://example.org/a.mp3", "mime_type": "audio/mpeg",
				"title": "Episode 1", "size_in_bytes": float64(100), "duration_in_seconds": float64(60),
			},
			want: true,
		},
		{name: "required only", doc: Document{"url": "u", "mime_type": "m"}, want: true},
		{name: "missing mime_type", doc: Document{"url": "u"}, want: false},
		{name: "missing url", doc: Document{"mime_type": "m"}, want: false},
		{name: "negative size", doc: Document{"url": "u", "mime_type": "m", "size_in_bytes": float64(-1)}, want: false},
		{name: "fractional duration", doc: Document{"url": "u", "mime_type": "m", "duration_in_seconds": 1.5}, want: false},
		{name: "non-string title", doc: Document{"url": "u", "mime_type": "m", "title": 1.0}, want: false},
		{name: "unknown key", doc: Document{"url": "u", "mime_type": "m", "foo": 1.0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewAttachmentRef(tt.doc).IsValid(Version1_1))
		})
	}
}

func TestIsValidUnrecognizedTargetValidatesNothing(t *testing.T) {
	target := Version("https://jsonfeed.org/version/99")

	assert.False(t, NewAuthorRef(Document{"name": "Jane"}).IsValid(target))
	assert.False(t, NewHubRef(Document{"type": "t", "url": "u"}).IsValid(target))
	assert.False(t, NewAttachmentRef(Document{"url": "u", "mime_type": "m"}).IsValid(target))
	assert.False(t, NewItemRef(Document{"id": "1", "content_text": "x"}).IsValid(target))
	assert.False(t, mustFeed(t, minimalFeedJSON(string(Version1))).IsValid(target))
}

func TestIsValidAcrossViewForms(t *testing.T) {
	doc := mustDocument(t, minimalFeedJSON(string(Version1)))

	owned, err := FromValue(doc)
	require.NoError(t, err)
	assert.True(t, owned.IsValid(Version1))
	assert.True(t, NewFeedRef(doc).IsValid(Version1))
	assert.True(t, NewFeedMut(doc).IsValid(Version1))
}

func TestSpecExample(t *testing.T) {
	feed := mustFeed(t, `{
		"version": "https://jsonfeed.org/version/1.1",
		"title": "T",
		"items": [{"id": "1", "content_text": "x"}]
	}`)

	title, ok, err := feed.Title()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "T", title)

	items, ok, err := feed.Items()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, items, 1)

	assert.True(t, feed.IsValid(Version1_1))
	assert.False(t, feed.IsValid(Version1))
}
