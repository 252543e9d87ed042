// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/loonia/pkg/pagination"
)

/*
TestNew_Defaults verifies that non-positive inputs fall back to the defaults.
*/
func TestNew_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"zero_values", 0, 0, 1, 10},
		{"negative_values", -3, -1, 1, 10},
		{"explicit_values", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.New(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

/*
TestParams_Window checks clamping of the page window to the sequence bounds.
*/
func TestParams_Window(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		n         int
		wantStart int
		wantEnd   int
	}{
		{"first_page", 1, 10, 25, 0, 10},
		{"middle_page", 2, 10, 25, 10, 20},
		{"short_last_page", 3, 10, 25, 20, 25},
		{"beyond_last_page", 4, 10, 25, 25, 25},
		{"empty_sequence", 1, 10, 0, 0, 0},
		{"huge_page", math.MaxInt, 100, 25, 25, 25},
		{"huge_page_unit_limit", math.MaxInt, 1, 25, 25, 25},
		{"huge_limit_first_page", 1, math.MaxInt, 25, 0, 25},
		{"huge_limit_second_page", 2, math.MaxInt, 25, 25, 25},
		{"huge_page_and_limit", math.MaxInt, math.MaxInt, 25, 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pagination.New(tt.page, tt.limit).Window(tt.n)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

/*
TestPaginate_ConcatenationLaw verifies that concatenating every page in order
reproduces the full sequence with no duplicates or omissions.
*/
func TestPaginate_ConcatenationLaw(t *testing.T) {
	all := make([]int, 23)
	for i := range all {
		all[i] = i
	}

	for _, limit := range []int{1, 4, 7, 10, 23, 50} {
		first := pagination.Paginate(all, pagination.New(1, limit))
		assert.Equal(t, (len(all)+limit-1)/limit, first.TotalPages)

		var joined []int
		for page := 1; page <= first.TotalPages; page++ {
			p := pagination.Paginate(all, pagination.New(page, limit))
			assert.Equal(t, len(all), p.TotalLength)
			joined = append(joined, p.Items...)
		}
		assert.Equal(t, all, joined, "limit=%d", limit)
	}
}

/*
TestPaginate_BeyondLastPage verifies that an out-of-range page is empty, not nil.
*/
func TestPaginate_BeyondLastPage(t *testing.T) {
	p := pagination.Paginate([]string{"a", "b"}, pagination.New(5, 10))

	require.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 2, p.TotalLength)
}

/*
TestPaginate_HugeValues verifies that extreme page and limit values neither
wrap around to earlier pages nor panic.
*/
func TestPaginate_HugeValues(t *testing.T) {
	all := []int{1, 2, 3}

	tests := []struct {
		name      string
		params    pagination.Params
		wantItems []int
		wantPages int
	}{
		{"huge_page", pagination.New(math.MaxInt, 100), []int{}, 1},
		{"huge_limit", pagination.New(1, math.MaxInt), []int{1, 2, 3}, 1},
		{"huge_limit_beyond_last", pagination.New(2, math.MaxInt), []int{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p pagination.Page[int]
			require.NotPanics(t, func() { p = pagination.Paginate(all, tt.params) })

			assert.Equal(t, tt.wantItems, p.Items)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, 3, p.TotalLength)
		})
	}
}

/*
TestParams_Offset saturates instead of wrapping on overflow.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.New(1, 10).Offset())
	assert.Equal(t, 20, pagination.New(3, 10).Offset())
	assert.Equal(t, math.MaxInt, pagination.New(math.MaxInt, 100).Offset())
}

/*
TestAll wraps a sequence as one unpaginated page.
*/
func TestAll(t *testing.T) {
	p := pagination.All([]string{"a", "b", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, p.Items)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 3, p.Limit)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, pagination.Meta{Page: 1, Limit: 3, Total: 3, TotalPages: 1}, p.Meta())
}

/*
TestFromRequest tests query-string parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
		requested bool
	}{
		{"no_params", "/x", 1, 10, false},
		{"valid_params", "/x?page=3&limit=5", 3, 5, true},
		{"garbage_params", "/x?page=abc&limit=-2", 1, 10, true},
		{"limit_above_max", "/x?limit=1000", 1, pagination.MaxLimit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			p := pagination.FromRequest(request)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.requested, pagination.Requested(request))
		})
	}
}
