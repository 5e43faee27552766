package dto

import (
	"net/http"
	"rooming/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"      validate:"omitempty"`
	Limit   int    `json:"limit"     validate:"omitempty"`
	SortBy  string `json:"sortBy"    validate:"omitempty"`
	SortDir string `json:"sortOrder" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// Pagination is only applied when `defaultRequest` is true or the caller asks for it:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, false)
//
// SortBy is the raw API sort key; call Sanitize before handing the params to a repository.
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

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortOrder)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
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

// Sanitize replaces the API sort key with its column from allowed.
// Unknown keys fall back to fallback in ascending order, so no request value ever reaches ORDER BY.
func (q QueryParams) Sanitize(allowed map[string]string, fallback string) QueryParams {
	column, ok := allowed[q.SortBy]
	if !ok {
		q.SortBy = fallback
		q.SortDir = SortDirAsc

		return q
	}

	q.SortBy = column
	if q.SortDir != SortDirDesc {
		q.SortDir = SortDirAsc
	}

	return q
}
