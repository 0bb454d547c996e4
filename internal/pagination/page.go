// Package pagination implements the offset/limit page contract shared by the
// moderation queue and the audit log search.
package pagination

// DefaultLimit is applied when a request omits the page size.
const DefaultLimit = 25

// Params are the caller-supplied paging inputs. Zero values are normalized by
// Normalize before use.
type Params struct {
	Page  int // 1-based page number
	Limit int // Page size
}

// Normalize clamps the parameters to sane values. maxLimit of 0 means no cap.
func (p Params) Normalize(maxLimit int) Params {
	if p.Page < 1 {
		p.Page = 1
	}

	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}

	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	return p
}

// Offset returns the row offset for the normalized parameters.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is one page of results with the metadata callers echo back to clients.
// An out-of-range request yields an empty Data slice with accurate metadata,
// never an error.
type Page[T any] struct {
	Data         []T `json:"data"`
	CurrentPage  int `json:"currentPage"`
	Limit        int `json:"limit"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// NewPage assembles a page from query results and the total row count.
func NewPage[T any](data []T, params Params, totalRecords int) *Page[T] {
	if data == nil {
		data = []T{}
	}

	return &Page[T]{
		Data:         data,
		CurrentPage:  params.Page,
		Limit:        params.Limit,
		TotalRecords: totalRecords,
		TotalPages:   totalPages(totalRecords, params.Limit),
	}
}

// EmptyPage is a page with no results, used for scoped-out queries where the
// information-hiding policy prefers an empty result over an error.
func EmptyPage[T any](params Params) *Page[T] {
	return NewPage[T](nil, params, 0)
}

func totalPages(totalRecords, limit int) int {
	if totalRecords == 0 || limit < 1 {
		return 0
	}

	return (totalRecords + limit - 1) / limit
}
