package services

import "math"

type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Limit       int   `json:"limit"`
}

func paginate(total int64, page, limit int) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
		Limit:       limit,
	}
}

func normalizeSort(sort string) string {
	if sort != "asc" && sort != "desc" {
		return "asc"
	}
	return sort
}
