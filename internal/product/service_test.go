package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	s := NewService()

	cats := s.Categories()
	require.Len(t, cats, 6)
	assert.Equal(t, CategoryAll, cats[0].ID)
	assert.Equal(t, "Accessories", cats[len(cats)-1].Name)
}

func TestListFiltering(t *testing.T) {
	s := NewService()

	all := s.List(CategoryAll)
	require.Len(t, all, 4)

	// Empty category behaves like "all".
	assert.Equal(t, all, s.List(""))

	mountain := s.List("mountain")
	require.Len(t, mountain, 1)
	assert.Equal(t, "Alpine Explorer Pro", mountain[0].Name)
	require.NotNil(t, mountain[0].DiscountPrice)
	assert.Equal(t, 1699, *mountain[0].DiscountPrice)

	// A category with no products yields an empty, non-nil slice.
	accessories := s.List("accessories")
	assert.NotNil(t, accessories)
	assert.Empty(t, accessories)

	// Unknown categories match nothing rather than failing.
	assert.Empty(t, s.List("unicycles"))
}

func TestFeatured(t *testing.T) {
	s := NewService()

	featured := s.Featured()
	require.Len(t, featured, 4)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}
