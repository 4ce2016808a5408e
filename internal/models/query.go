package models

import "math"

// SortKey is one ordering term of a sort specification
type SortKey struct {
	Field      string
	Descending bool
}

// SortSpec is an ordered list of sort keys; insertion order breaks remaining ties
type SortSpec []SortKey

// ListOptions carries pagination and ordering for listings
type ListOptions struct {
	Page  int
	Limit int
	Sort  SortSpec
}

// Offset returns the number of rows skipped before the page. It saturates at
// math.MaxInt instead of overflowing for very large pages.
func (o ListOptions) Offset() int {
	if o.Page < 1 || o.Limit < 1 {
		return 0
	}
	if o.Page-1 > math.MaxInt/o.Limit {
		return math.MaxInt
	}
	return (o.Page - 1) * o.Limit
}

// LawyerFilter holds equality filters for lawyer survey listings
type LawyerFilter struct {
	Status        string
	InterestLevel string
}

// GeneralFilter holds equality filters for general survey listings
type GeneralFilter struct {
	Nationality string
	Language    string
}

// LawyerSearchCriteria narrows a lawyer survey search.
// Text criteria are literal substrings; nil bounds are not applied.
type LawyerSearchCriteria struct {
	Name            string
	Email           string
	Mobile          string
	City            string
	MinCompensation *float64
	MaxCompensation *float64
	MinCapacity     *int
}

// SearchLimit caps the number of rows returned by a lawyer survey search
const SearchLimit = 50

// Page is one page of a listing
type Page[T any] struct {
	Data        []T `json:"data"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Total       int `json:"total"`
}

// NewPage assembles a page and computes ceil(total/limit)
func NewPage[T any](data []T, total int, opts ListOptions) Page[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if opts.Limit > 0 {
		totalPages = (total + opts.Limit - 1) / opts.Limit
	}
	return Page[T]{
		Data:        data,
		TotalPages:  totalPages,
		CurrentPage: opts.Page,
		Total:       total,
	}
}

// ListResponse wraps a page for the transport layer
type ListResponse[T any] struct {
	Success bool `json:"success"`
	Page[T]
}

// SearchResponse wraps search results for the transport layer
type SearchResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Data    []*LawyerSurvey `json:"data"`
}

// ListQuery is the paging part of a listing request
type ListQuery struct {
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
	Sort  string `form:"sort" binding:"omitempty,max=200"`
}

// LawyerListQuery are the query parameters of the lawyer survey listing
type LawyerListQuery struct {
	ListQuery
	Status        string `form:"status" binding:"omitempty,max=50"`
	InterestLevel string `form:"interest_level" binding:"omitempty,max=200"`
}

// Filter extracts the equality filters
func (q LawyerListQuery) Filter() LawyerFilter {
	return LawyerFilter{Status: q.Status, InterestLevel: q.InterestLevel}
}

// GeneralListQuery are the query parameters of the general survey listing
type GeneralListQuery struct {
	ListQuery
	Nationality string `form:"nationality" binding:"omitempty,max=200"`
	Language    string `form:"language" binding:"omitempty,max=20"`
}

// Filter extracts the equality filters
func (q GeneralListQuery) Filter() GeneralFilter {
	return GeneralFilter{Nationality: q.Nationality, Language: q.Language}
}

// LawyerSearchQuery are the query parameters of the lawyer survey search
type LawyerSearchQuery struct {
	Name            string   `form:"name" binding:"omitempty,max=200"`
	Email           string   `form:"email" binding:"omitempty,max=200"`
	Mobile          string   `form:"mobile" binding:"omitempty,max=20"`
	City            string   `form:"city" binding:"omitempty,max=200"`
	MinCompensation *float64 `form:"minCompensation" binding:"omitempty,gte=0"`
	MaxCompensation *float64 `form:"maxCompensation" binding:"omitempty,gte=0"`
	MinCapacity     *int     `form:"minCapacity" binding:"omitempty,gte=0"`
}

// Criteria converts the query into search criteria
func (q LawyerSearchQuery) Criteria() LawyerSearchCriteria {
	return LawyerSearchCriteria{
		Name:            q.Name,
		Email:           q.Email,
		Mobile:          q.Mobile,
		City:            q.City,
		MinCompensation: q.MinCompensation,
		MaxCompensation: q.MaxCompensation,
		MinCapacity:     q.MinCapacity,
	}
}

// DataResponse wraps a single payload for the transport layer
type DataResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}
