package dto

import (
	"coworking/shared/constant"
	"net/http"
	"strconv"
	"strings"
)

type QueryParams struct {
	Page   int    `json:"page"    validate:"omitempty"`
	Limit  int    `json:"limit"   validate:"omitempty"`
	SortBy string `json:"sort_by" validate:"omitempty,oneof=date user resource"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, a missing Page or Limit takes its default value.
// Without it, a missing Limit means the whole list.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSort); sortBy != "" {
		q.SortBy = strings.ToLower(sortBy)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Paginate returns the page of items selected by q. A zero Limit selects every item.
func Paginate[T any](items []T, q QueryParams) []T {
	if q.Limit <= 0 {
		return items
	}

	page := max(q.Page, 1)

	from := (page - 1) * q.Limit
	if from >= len(items) {
		return []T{}
	}

	return items[from:min(from+q.Limit, len(items))]
}
