package dto

import "orionhotel/response"

// PaginatedResponse là struct chung cho các response có phân trang
type PaginatedResponse[T any] struct {
	Data       T                   `json:"data"`
	Pagination response.Pagination `json:"pagination"`
}

// Paginate cắt một trang từ danh sách đã lọc. page bắt đầu từ 1.
func Paginate[T any](items []T, page, limit int) ([]T, int, int) {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, page, limit
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, limit
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
