package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterFromQuery(t *testing.T) {
	q, err := url.ParseQuery("search=karachi&sort[created_at]=desc&filter[status]=DRAFT&filter[department_id]=3&limit=25&offset=50")
	require.NoError(t, err)

	filter := ParseFilterFromQuery(q)

	assert.Equal(t, "karachi", filter.Search)
	assert.Equal(t, "desc", filter.Sort["created_at"])
	assert.Equal(t, "DRAFT", filter.Filter["status"])
	assert.Equal(t, "3", filter.Filter["department_id"])
	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, 50, filter.Offset)
	assert.Equal(t, 3, filter.Page)
	assert.True(t, filter.WithPagination)
}

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 0, filter.Offset)
	assert.Equal(t, 1, filter.Page)
	assert.False(t, filter.WithPagination)
}

func TestParseFilterFromQuery_PageOnly(t *testing.T) {
	q, _ := url.ParseQuery("page=4&limit=20")
	filter := ParseFilterFromQuery(q)
	assert.Equal(t, 60, filter.Offset)
	assert.Equal(t, 4, filter.Page)
}

func TestParseUint64Slice(t *testing.T) {
	ids, err := ParseUint64Slice([]string{"1", " 2", "", "30"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 30}, ids)

	_, err = ParseUint64Slice([]string{"abc"})
	assert.Error(t, err)
}

func TestFormatHoursHumanReadable(t *testing.T) {
	assert.Equal(t, "0h", FormatHoursHumanReadable(0))
	assert.Equal(t, "2h", FormatHoursHumanReadable(2))
	assert.Equal(t, "3h 30m", FormatHoursHumanReadable(3.5))
}
