package jsonfeed

// Recognized JSON Feed spec revisions.
const (
	// Version1 identifies JSON Feed 1.0 feeds.
	Version1 Version = "https://jsonfeed.org/version/1"
	// Version1_1 identifies JSON Feed 1.1 feeds.
	Version1_1 Version = "https://jsonfeed.org/version/1.1"
)

// Version is a JSON Feed spec version identifier. The two recognized
// revisions are Version1 and Version1_1; any other value is an unrecognized
// revision carrying its raw string, which round-trips through documents
// unchanged but never validates.
type Version string

// Recognized reports whether v is one of the recognized spec revisions.
func (v Version) Recognized() bool {
	return v == Version1 || v == Version1_1
}

func (v Version) String() string {
	return string(v)
}
