package helpers

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"acaradashboard/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortFields are the accepted values of the sort query parameter (prefix "-" for descending).
var SortFields = []string{"tanggal", "name"}

// ParsePagination reads page and page_size from the query string. Missing or
// invalid values fall back to the defaults and page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveInt(q.Get("page"), DefaultPage),
		PageSize: min(positiveInt(q.Get("page_size"), DefaultPageSize), MaxPageSize),
	}
}

func positiveInt(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil && v >= 1 {
		return v
	}
	return fallback
}

// ParseListOptions reads the opt-in listing parameters. Pagination is applied
// only when page or page_size is present and sorting only when sort is present;
// with none of them the listing is unbounded and in store order.
func ParseListOptions(r *http.Request) (domain.ListOptions, error) {
	q := r.URL.Query()
	var opts domain.ListOptions
	if q.Has("page") || q.Has("page_size") {
		p := ParsePagination(r)
		opts.Pagination = &p
	}
	if s := strings.TrimSpace(q.Get("sort")); s != "" {
		sort := &domain.SortOption{Field: s}
		if strings.HasPrefix(s, "-") {
			sort.Field, sort.Descending = s[1:], true
		}
		if !slices.Contains(SortFields, sort.Field) {
			return domain.ListOptions{}, fmt.Errorf("sort must be one of %s (prefix - for descending)", strings.Join(SortFields, ", "))
		}
		opts.Sort = sort
	}
	return opts, nil
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds the meta of one page. TotalPages rounds up and is 0
// when pageSize is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	meta := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		meta.TotalPages = (total + pageSize - 1) / pageSize
	}
	return meta
}
