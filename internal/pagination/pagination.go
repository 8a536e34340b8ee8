// Package pagination provides limit/offset paging helpers shared by the
// list endpoints.
package pagination

import "gorm.io/gorm"

// MaxLimit caps the page size regardless of what the client requests.
const MaxLimit = 100

// DefaultLimit is used when no limit is supplied.
const DefaultLimit = 50

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// Defaults fills in the default limit and clamps it to MaxLimit.
func (p *PageRequest) Defaults() {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse wraps a paginated list of items with paging metadata.
// HasMore is true when the page came back full, meaning a further page
// may exist; callers detect the end of the result set by an underfull page.
type PageResponse[T any] struct {
	Data    []T  `json:"data"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// NewPageResponse creates a PageResponse from the given data and request.
func NewPageResponse[T any](data []T, req PageRequest) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:    data,
		Limit:   req.Limit,
		Offset:  req.Offset,
		HasMore: len(data) == req.Limit,
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset).Limit(req.Limit)
	}
}
