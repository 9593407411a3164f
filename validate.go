package jsonfeed

import "strings"

// Validation is pure and boolean: an entity either complies with the target
// revision or it does not. Any type mismatch on a declared property, any
// missing required property, and any non-extension key outside the
// revision's permitted set makes the entity invalid. An unrecognized target
// revision validates nothing.

// Pre-computed permitted key sets per entity kind. The authors and language
// properties are legal on feeds and items only from the 1.1 revision
// onward.
var (
	authorKeys = keySet("name", "avatar", "url")

	hubKeys = keySet("type", "url")

	attachmentKeys = keySet(
		"url", "mime_type", "title", "size_in_bytes", "duration_in_seconds",
	)

	feedKeysV1 = keySet(
		"version", "title", "home_page_url", "feed_url", "description",
		"user_comment", "next_url", "icon", "favicon", "author",
		"expired", "hubs", "items",
	)
	feedKeysV1_1 = keySet(
		"version", "title", "home_page_url", "feed_url", "description",
		"user_comment", "next_url", "icon", "favicon", "author",
		"authors", "language", "expired", "hubs", "items",
	)

	itemKeysV1 = keySet(
		"id", "url", "external_url", "title", "content_html", "content_text",
		"summary", "image", "banner_image", "date_published", "date_modified",
		"author", "tags", "attachments",
	)
	itemKeysV1_1 = keySet(
		"id", "url", "external_url", "title", "content_html", "content_text",
		"summary", "image", "banner_image", "date_published", "date_modified",
		"author", "authors", "tags", "language", "attachments",
	)
)

func keySet(keys ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		out[k] = struct{}{}
	}
	return out
}

// isExtensionKey reports whether the key starts with the extension sigil.
// Extension keys are exempt from permitted-key checks at every level.
func isExtensionKey(key string) bool {
	return strings.HasPrefix(key, "_")
}

func keysAllowed(d Document, allowed map[string]struct{}) bool {
	for k := range d {
		if _, ok := allowed[k]; !ok && !isExtensionKey(k) {
			return false
		}
	}
	return true
}

// hasString reports that key is present as a JSON string.
func hasString(d Document, key string) bool {
	_, ok, err := getString(d, key)
	return err == nil && ok
}

// stringOK reports that key is absent or a JSON string.
func stringOK(d Document, key string) bool {
	_, _, err := getString(d, key)
	return err == nil
}

func isValidAuthor(d Document, target Version) bool {
	if !target.Recognized() {
		return false
	}
	_, nameOK, nameErr := getString(d, "name")
	_, avatarOK, avatarErr := getString(d, "avatar")
	_, urlOK, urlErr := getString(d, "url")
	if nameErr != nil || avatarErr != nil || urlErr != nil {
		return false
	}
	if !nameOK && !avatarOK && !urlOK {
		return false
	}
	return keysAllowed(d, authorKeys)
}

func isValidHub(d Document, target Version) bool {
	if !target.Recognized() {
		return false
	}
	return hasString(d, "type") &&
		hasString(d, "url") &&
		keysAllowed(d, hubKeys)
}

func isValidAttachment(d Document, target Version) bool {
	if !target.Recognized() {
		return false
	}
	if !hasString(d, "url") || !hasString(d, "mime_type") {
		return false
	}
	if !stringOK(d, "title") {
		return false
	}
	if _, _, err := getUint(d, "size_in_bytes"); err != nil {
		return false
	}
	if _, _, err := getUint(d, "duration_in_seconds"); err != nil {
		return false
	}
	return keysAllowed(d, attachmentKeys)
}

func isValidItem(d Document, target Version) bool {
	if !target.Recognized() {
		return false
	}
	allowed := itemKeysV1
	if target == Version1_1 {
		allowed = itemKeysV1_1
	}

	if !hasString(d, "id") {
		return false
	}
	if !stringOK(d, "content_html") || !stringOK(d, "content_text") {
		return false
	}
	if !hasString(d, "content_html") && !hasString(d, "content_text") {
		return false
	}
	for _, key := range []string{
		"url", "external_url", "title", "summary", "image", "banner_image",
		"date_published", "date_modified", "language",
	} {
		if !stringOK(d, key) {
			return false
		}
	}
	if _, _, err := getStringArray(d, "tags"); err != nil {
		return false
	}

	author, ok, err := getObject(d, "author")
	if err != nil {
		return false
	}
	if ok && !isValidAuthor(author, target) {
		return false
	}
	authors, ok, err := getObjectArray(d, "authors")
	if err != nil {
		return false
	}
	if ok {
		for _, a := range authors {
			if !isValidAuthor(a, target) {
				return false
			}
		}
	}
	attachments, ok, err := getObjectArray(d, "attachments")
	if err != nil {
		return false
	}
	if ok {
		for _, a := range attachments {
			if !isValidAttachment(a, target) {
				return false
			}
		}
	}

	return keysAllowed(d, allowed)
}

func isValidFeed(d Document, target Version) bool {
	if !target.Recognized() {
		return false
	}
	allowed := feedKeysV1
	if target == Version1_1 {
		allowed = feedKeysV1_1
	}

	// The declared revision alone gates compatibility: a 1.0 feed validates
	// against either target, a 1.1 feed only against the 1.1 target, and an
	// unrecognized declared revision against neither.
	declared, ok, err := getString(d, "version")
	if err != nil || !ok {
		return false
	}
	switch Version(declared) {
	case Version1:
	case Version1_1:
		if target != Version1_1 {
			return false
		}
	default:
		return false
	}

	if !hasString(d, "title") {
		return false
	}

	items, ok, err := getObjectArray(d, "items")
	if err != nil || !ok {
		return false
	}
	for _, item := range items {
		if !isValidItem(item, target) {
			return false
		}
	}

	hubs, ok, err := getObjectArray(d, "hubs")
	if err != nil {
		return false
	}
	if ok {
		for _, hub := range hubs {
			if !isValidHub(hub, target) {
				return false
			}
		}
	}

	for _, key := range []string{
		"home_page_url", "feed_url", "description", "user_comment",
		"next_url", "icon", "favicon", "language",
	} {
		if !stringOK(d, key) {
			return false
		}
	}
	if _, _, err := getBool(d, "expired"); err != nil {
		return false
	}
	if _, _, err := getObject(d, "author"); err != nil {
		return false
	}
	if _, _, err := getObjectArray(d, "authors"); err != nil {
		return false
	}

	return keysAllowed(d, allowed)
}
