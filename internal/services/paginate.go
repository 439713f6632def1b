package services

import (
	"fmt"

	"github.com/localnerve/enxovaldb/internal/types"
)

// Paginate returns page (1-based) of pageSize records, clamped to the slice bounds.
// A page past the end is empty, not an error.
func Paginate[T any](records []T, page, pageSize int) ([]T, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1, got %d", types.ErrInvalidArgument, page)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: pageSize must be >= 1, got %d", types.ErrInvalidArgument, pageSize)
	}

	// Compare page numbers before multiplying; (page-1)*pageSize can wrap for huge path values.
	if len(records) == 0 || page-1 > (len(records)-1)/pageSize {
		return []T{}, nil
	}

	first := (page - 1) * pageSize
	last := len(records)
	if pageSize < last-first {
		last = first + pageSize
	}

	out := make([]T, last-first)
	copy(out, records[first:last])
	return out, nil
}
