package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp_Defaults(t *testing.T) {
	page, size := Clamp(0, 0)
	require.Equal(t, DefaultPage, page)
	require.Equal(t, DefaultPageSize, size)

	page, size = Clamp(-4, -1)
	require.Equal(t, DefaultPage, page)
	require.Equal(t, DefaultPageSize, size)

	page, size = Clamp(3, 5)
	require.Equal(t, 3, page)
	require.Equal(t, 5, size)
}

func TestSlice_CutsRequestedPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page := Slice(items, 2, 2)
	require.Equal(t, []int{3, 4}, page.Items)
	require.Equal(t, int64(5), page.Total)

	page = Slice(items, 3, 2)
	require.Equal(t, []int{5}, page.Items)

	page = Slice(items, 10, 2)
	require.Empty(t, page.Items)
	require.Equal(t, int64(5), page.Total)
}
