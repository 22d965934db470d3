package models

// PageResponse is the shared paginated list envelope. Pages are zero-indexed;
// a page past the end simply has empty content.
type PageResponse struct {
	Content       interface{} `json:"content"`
	PageNumber    int64       `json:"pageNumber"`
	PageSize      int64       `json:"pageSize"`
	TotalElements int64       `json:"totalElements"`
	TotalPages    int64       `json:"totalPages"`
}

func NewPageResponse(content interface{}, page, size, total int64) PageResponse {
	totalPages := int64(0)
	if size > 0 {
		totalPages = (total + size - 1) / size
	}
	return PageResponse{
		Content:       content,
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
