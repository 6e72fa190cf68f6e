package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital-canvas/models"
)

func TestBundledStaticDataIsValid(t *testing.T) {
	static, err := NewStaticSource()
	require.NoError(t, err)

	raw, err := static.FetchAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	items := TransformAll(raw)
	assert.Len(t, items, len(raw), "every bundled record must transform")

	for i, item := range items {
		assert.NotEmpty(t, item.Slug)
		assert.False(t, item.PublishedAt.IsZero(), "bundled record %s must be dated", item.Slug)
		assert.Equal(t, item.Type == models.ContentTypeNewsletter, item.NewsletterContent != nil)
		if i > 0 {
			assert.True(t, items[i-1].PublishedAt.After(item.PublishedAt))
		}
	}
}

func TestStaticSourceFetchBySlug(t *testing.T) {
	static := NewStaticSourceFromItems([]models.FeedItem{{ID: "1", Slug: "a"}, {ID: "2", Slug: "b"}})

	item, err := static.FetchBySlug(context.Background(), "b")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "2", item.ID)

	item, err = static.FetchBySlug(context.Background(), "c")
	assert.NoError(t, err)
	assert.Nil(t, item)
}

func TestStaticSourceReturnsCopies(t *testing.T) {
	static := NewStaticSourceFromItems([]models.FeedItem{{ID: "1", Slug: "a"}})

	items, err := static.FetchAll(context.Background())
	require.NoError(t, err)
	items[0].Slug = "mutated"

	again, err := static.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Slug)
}
