//go:build unit

package queries_test

import (
	"testing"

	"store-reservation/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		want       queries.PageRequest
	}{
		{"keeps a valid window", 2, 10, queries.PageRequest{Page: 2, Size: 10}},
		{"negative page", -1, 10, queries.PageRequest{Page: 0, Size: 10}},
		{"zero size uses the default", 0, 0, queries.PageRequest{Page: 0, Size: queries.DefaultPageSize}},
		{"oversized", 0, 500, queries.PageRequest{Page: 0, Size: queries.MaxPageSize}},
		{"page past the last window", 30_000_000, 100, queries.PageRequest{Page: queries.MaxPage, Size: queries.MaxPageSize}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queries.NewPageRequest(tt.page, tt.size))
		})
	}
}

func TestPageRequestWindow(t *testing.T) {
	req := queries.NewPageRequest(3, 20)
	assert.Equal(t, int32(20), req.Limit())
	assert.Equal(t, int32(60), req.Offset())

	far := queries.NewPageRequest(30_000_000, 100)
	assert.Equal(t, int32(queries.MaxPage*queries.MaxPageSize), far.Offset())
	assert.Positive(t, far.Offset())
}

func TestNewPage(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		p := queries.NewPage([]int{1, 2}, queries.NewPageRequest(0, 2), 5)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(5), p.TotalElements)
	})

	t.Run("nil content becomes empty", func(t *testing.T) {
		p := queries.NewPage[int](nil, queries.NewPageRequest(0, 2), 0)
		assert.NotNil(t, p.Content)
		assert.Empty(t, p.Content)
		assert.Zero(t, p.TotalPages)
	})
}
