package dto

import (
	"net/http"
	"petstay/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,min=1"`
	Limit   int    `json:"limit"    validate:"omitempty,min=1,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// Offset is the number of rows skipped before the current page.
func (q QueryParams) Offset() int {
	if q.Page < 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

// FromRequest reads paging and sorting from the query string. Page and limit fall back
// to defaults and limit is capped. sort_by is looked up in sortable, which maps the
// public name to the qualified column, so unknown names never reach ORDER BY.
func (q *QueryParams) FromRequest(r *http.Request, sortable map[string]string) {
	query := r.URL.Query()

	q.Page = positiveInt(query.Get(constant.RequestParamPage), constant.DefaultValuePage)
	q.Limit = min(positiveInt(query.Get(constant.RequestParamLimit), constant.DefaultValueLimit), constant.MaxValueLimit)

	column, ok := sortable[strings.ToLower(strings.TrimSpace(query.Get(constant.RequestParamSortBy)))]
	if !ok {
		return
	}

	q.SortBy = column
	q.SortDir = SortDirAsc

	if strings.EqualFold(query.Get(constant.RequestParamSortDir), SortDirDesc) {
		q.SortDir = SortDirDesc
	}
}

func positiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}

	return value
}
