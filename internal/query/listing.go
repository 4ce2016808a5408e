package query

import (
	"fmt"

	"github.com/legalpulse/survey-api/internal/models"
	apperrors "github.com/legalpulse/survey-api/pkg/errors"
)

// Listing holds the paging defaults and sortable fields of one record kind
type Listing struct {
	DefaultLimit int
	MaxLimit     int
	DefaultSort  models.SortSpec
	SortFields   []string
}

// MaxLimit is the largest page size a caller may request
const MaxLimit = 200

var (
	// LawyerListing lists lawyer surveys newest first, 20 per page
	LawyerListing = Listing{
		DefaultLimit: 20,
		MaxLimit:     MaxLimit,
		DefaultSort:  models.SortSpec{{Field: "createdAt", Descending: true}},
		SortFields:   LawyerSortFields.Names(),
	}

	// GeneralListing lists general surveys by submission time, 50 per page
	GeneralListing = Listing{
		DefaultLimit: 50,
		MaxLimit:     MaxLimit,
		DefaultSort:  models.SortSpec{{Field: "submittedAt", Descending: true}},
		SortFields:   GeneralSortFields.Names(),
	}
)

// WithLimits returns a copy using the given page size defaults; non-positive values keep the current ones
func (l Listing) WithLimits(defaultLimit, maxLimit int) Listing {
	if defaultLimit > 0 {
		l.DefaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		l.MaxLimit = maxLimit
	}
	if l.DefaultLimit > l.MaxLimit {
		l.DefaultLimit = l.MaxLimit
	}
	return l
}

// Options resolves raw paging parameters. Zero page and limit take the defaults;
// limits above the maximum are capped.
func (l Listing) Options(page, limit int, sort string) (models.ListOptions, error) {
	if page < 0 || limit < 0 {
		return models.ListOptions{}, fmt.Errorf("%w: page and limit must be positive", apperrors.ErrInvalidInput)
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = l.DefaultLimit
	}
	if limit > l.MaxLimit {
		limit = l.MaxLimit
	}

	spec, err := ParseSort(sort, l.SortFields, l.DefaultSort)
	if err != nil {
		return models.ListOptions{}, err
	}

	return models.ListOptions{Page: page, Limit: limit, Sort: spec}, nil
}
