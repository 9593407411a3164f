// Package jsonfeed provides a typed model over JSON Feed documents.
//
// The package does not define structs mirroring the JSON Feed schema.
// Instead, every typed value is a view over a generic JSON object
// (Document), with accessor methods for the standard properties. The
// underlying data is never required to be a valid JSON Feed; validity is an
// explicit, separate question answered by IsValid.
//
// # Quick Start
//
//	feed, err := jsonfeed.Unmarshal(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if title, ok, _ := feed.Title(); ok {
//	    fmt.Println(title)
//	}
//	items, _, _ := feed.Items()
//	for _, item := range items {
//	    id, _, _ := item.ID()
//	    fmt.Println(id)
//	}
//
//	if !feed.IsValid(jsonfeed.Version1_1) {
//	    log.Fatal("not a valid 1.1 feed")
//	}
//
// # Owned Values and Views
//
// Each entity kind comes in three forms: an owned value (Feed, Item,
// Author, Hub, Attachment) holding its own backing Document, a read-only
// view (FeedRef, ItemRef, ...) over an object inside another document, and
// a mutable view (FeedMut, ItemMut, ...). All three expose the same typed
// accessors; views obtained from a getter alias the ancestor's storage, so
// writes through a mutable view are visible in the ancestor.
//
// Views have no lifecycle of their own. Do not keep a view across a
// mutation that removes or replaces the container it was produced from, and
// do not write through AsMap on a read-only view; the package does not
// police either at runtime.
//
// # Extensions
//
// Keys starting with "_" are extension fields. They are exempt from
// permitted-key validation at every level and survive a decode/encode round
// trip untouched. They are not modeled by the typed accessors; read and
// write them through AsMap:
//
//	feed.AsMap()["_example"] = map[string]any{"about": "https://example.org"}
//
// # Errors
//
// A missing property is never an error: getters report absence with a false
// second result. ErrUnexpectedType is returned when a property exists with
// the wrong JSON type. Decoding reports malformed JSON as a *DecodeError
// and a non-object top-level value as ErrUnexpectedType.
//
// # Concurrency
//
// Values are safe for concurrent reads. Any write (setters, removers,
// mutation through AsMap) requires external synchronization, including with
// concurrent readers of views into the same document.
package jsonfeed
