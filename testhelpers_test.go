package jsonfeed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFeed(t *testing.T, src string) *Feed {
	t.Helper()
	feed, err := UnmarshalString(src)
	require.NoError(t, err)
	return feed
}

func mustDocument(t *testing.T, src string) Document {
	t.Helper()
	return mustFeed(t, src).AsMap()
}
