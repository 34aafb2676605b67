package dto

import (
	"github.com/consentvault/consentvault-backend/models"
)

type Pagination struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (p Pagination) ToModel() models.Pagination {
	return models.Pagination{
		Limit:  p.Limit,
		Offset: p.Offset,
	}.WithDefaults()
}
