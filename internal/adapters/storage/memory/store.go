package memory

import (
	"fmt"
	"strings"

	"pet-shop-api/internal/platform/apperr"
)

var (
	ErrNotFound = fmt.Errorf("memory: %w", apperr.ErrNotFound)
)

// errDuplicate imita la violación de índice único de postgres (23505).
func errDuplicate(field string) error {
	return apperr.Conflict("duplicate value", fmt.Errorf("memory: duplicate %s", field))
}

// window aplica limit/offset sobre una colección ya ordenada; limit <= 0 = sin límite.
func window[T any](in []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(in) {
		return []T{}
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
