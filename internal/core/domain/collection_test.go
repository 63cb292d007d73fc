package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fixgen/internal/core/domain"
)

func TestDeduplicatedCollection_CollapsesDuplicates(t *testing.T) {
	a := domain.RenderedFixture{Path: "a.lock", Content: []byte("a")}
	b := domain.RenderedFixture{Path: "b.lock", Content: []byte("b")}

	c := domain.NewDeduplicatedCollection(a, b, a)
	assert.Equal(t, 2, c.Len())

	added := c.Add(b)
	assert.False(t, added)
	assert.Equal(t, 2, c.Len())
}

func TestDeduplicatedCollection_PreservesInsertionOrder(t *testing.T) {
	c := domain.NewDeduplicatedCollection(
		domain.RenderedFixture{Path: "z.lock", Content: []byte("z")},
		domain.RenderedFixture{Path: "a.lock", Content: []byte("a")},
		domain.RenderedFixture{Path: "m.lock", Content: []byte("m")},
	)

	var paths []string
	for item := range c.All() {
		paths = append(paths, item.Path)
	}
	assert.Equal(t, []string{"z.lock", "a.lock", "m.lock"}, paths)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "z.lock", items[0].Path)
}

func TestDeduplicatedCollection_SameContentDifferentPathStaysDistinct(t *testing.T) {
	c := domain.NewDeduplicatedCollection(
		domain.RenderedFixture{Path: "a/x.lock", Content: []byte("same")},
		domain.RenderedFixture{Path: "b/x.lock", Content: []byte("same")},
	)
	assert.Equal(t, 2, c.Len())
}

func TestDeduplicatedCollection_NilIsEmpty(t *testing.T) {
	var c *domain.DeduplicatedCollection[domain.RenderedFixture]
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Items())
	for range c.All() {
		t.Fatal("nil collection must not yield items")
	}
}
