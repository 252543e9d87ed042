// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/loonia/pkg/query"
)

/*
TestStringSlice verifies trimming and dropping of empty entries.
*/
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "LE", []string{"LE"}},
		{"spaces_around", " LE , XLE,SE ", []string{"LE", "XLE", "SE"}},
		{"empty_entries", "LE,,  ,SE", []string{"LE", "SE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.StringSlice(tt.in))
		})
	}
}

/*
TestContainsToken checks that matching is done per token, not per substring.
*/
func TestContainsToken(t *testing.T) {
	equals := func(want string) func(string) bool {
		return func(token string) bool { return token == want }
	}

	assert.True(t, query.ContainsToken("LE, XLE, SE", equals("XLE")))
	assert.False(t, query.ContainsToken("LE, XLE, SE", equals("XL")))
	assert.False(t, query.ContainsToken("", equals("")))
}
