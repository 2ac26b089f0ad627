package query

import "github.com/tair/storefront/pkg/apperr"

// MaxPageSize caps every listing
const MaxPageSize = 1000

// page validates paging arguments. A zero limit means the whole (capped) listing.
func page(limit, offset int) (int, int, error) {
	if limit < 0 {
		return 0, 0, apperr.Validationf("limit cannot be negative")
	}
	if offset < 0 {
		return 0, 0, apperr.Validationf("offset cannot be negative")
	}
	if limit == 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	return limit, offset, nil
}
