package utils

import (
	"net/url"
	"strconv"
	"strings"

	"admin-console/pkg/types"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ParseFilterFromQuery читает search/page/limit/offset/withPagination.
func ParseFilterFromQuery(values url.Values) types.Filter {
	f := types.Filter{
		Search: strings.TrimSpace(values.Get("search")),
		Limit:  DefaultLimit,
		Page:   1,
	}

	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		f.Limit = min(l, MaxLimit)
	}
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		f.Page = p
	}
	if o, err := strconv.Atoi(values.Get("offset")); err == nil && o >= 0 {
		f.Offset = o
	} else {
		f.Offset = (f.Page - 1) * f.Limit
	}
	f.WithPagination = values.Get("withPagination") != "false"

	return f
}
