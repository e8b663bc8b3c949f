package model

// TotalPages is ceil(count/limit). A non-positive limit yields zero pages.
func TotalPages(count, limit int) int {
	if limit <= 0 || count <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}

// Offset converts a 1-based page to a row offset. Pages below 1 clamp to 1.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}
