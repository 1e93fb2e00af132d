package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery(t *testing.T) {
	f := ParseFilterFromQuery(url.Values{})
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 0, f.Offset)
	assert.True(t, f.WithPagination)

	f = ParseFilterFromQuery(url.Values{"page": {"3"}, "limit": {"1000"}, "search": {" adm "}})
	assert.Equal(t, MaxLimit, f.Limit)
	assert.Equal(t, 2*MaxLimit, f.Offset)
	assert.Equal(t, "adm", f.Search)

	f = ParseFilterFromQuery(url.Values{"offset": {"5"}, "withPagination": {"false"}})
	assert.Equal(t, 5, f.Offset)
	assert.False(t, f.WithPagination)
}
