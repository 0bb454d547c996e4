package pagination_test

import (
	"testing"

	"github.com/arbiterhq/arbiter/internal/pagination"
	"github.com/stretchr/testify/assert"
)

func TestParams_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   pagination.Params
		maxLimit int
		want     pagination.Params
	}{
		{
			name:   "zero values get defaults",
			params: pagination.Params{},
			want:   pagination.Params{Page: 1, Limit: pagination.DefaultLimit},
		},
		{
			name:   "negative page clamps to first",
			params: pagination.Params{Page: -3, Limit: 10},
			want:   pagination.Params{Page: 1, Limit: 10},
		},
		{
			name:     "limit capped",
			params:   pagination.Params{Page: 2, Limit: 500},
			maxLimit: 100,
			want:     pagination.Params{Page: 2, Limit: 100},
		},
		{
			name:   "uncapped when max is zero",
			params: pagination.Params{Page: 2, Limit: 500},
			want:   pagination.Params{Page: 2, Limit: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.params.Normalize(tt.maxLimit))
		})
	}
}

func TestParams_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 25}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 3, Limit: 25}.Offset())
}

func TestNewPage_Metadata(t *testing.T) {
	t.Parallel()

	page := pagination.NewPage([]int{1, 2, 3}, pagination.Params{Page: 1, Limit: 3}, 10)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.Limit)
	assert.Equal(t, 10, page.TotalRecords)
	assert.Equal(t, 4, page.TotalPages, "10 records over pages of 3 is 4 pages")
}

func TestNewPage_OutOfRangeIsEmptyNotError(t *testing.T) {
	t.Parallel()

	page := pagination.NewPage[int](nil, pagination.Params{Page: 9, Limit: 25}, 10)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 9, page.CurrentPage)
	assert.Equal(t, 10, page.TotalRecords)
	assert.Equal(t, 1, page.TotalPages)
}

func TestEmptyPage(t *testing.T) {
	t.Parallel()

	page := pagination.EmptyPage[string](pagination.Params{Page: 2, Limit: 10})
	assert.Empty(t, page.Data)
	assert.Zero(t, page.TotalRecords)
	assert.Zero(t, page.TotalPages)
}
