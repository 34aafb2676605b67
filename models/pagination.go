package models

const (
	PaginationDefaultLimit = 100
	PaginationMaxLimit     = 1000
)

type Pagination struct {
	Limit  int
	Offset int
}

func (p Pagination) WithDefaults() Pagination {
	if p.Limit <= 0 {
		p.Limit = PaginationDefaultLimit
	}
	if p.Limit > PaginationMaxLimit {
		p.Limit = PaginationMaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
