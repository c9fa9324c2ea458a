package services

// Pagination describes one page of a result set.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

const (
	maxPageSize     = 50
	defaultPageSize = 10
)

// clampPaging normalizes caller-supplied paging: page is at least 1, limit is
// forced into [1, maxPageSize] with a default when unset.
func clampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// newPagination builds the descriptor for a page; pages is ceil(total/limit).
func newPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
