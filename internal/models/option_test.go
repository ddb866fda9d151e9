package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterOptions(t *testing.T) {
	options := []Option{
		{ID: 1, Name: "Bitcoin", Code: "BTC"},
		{ID: 2, Name: "Ethereum", Code: "ETH"},
		{ID: 3, Name: "Bitcoin Cash", Code: "BCH"},
	}

	tests := []struct {
		name     string
		query    string
		expected []int64
	}{
		{name: "empty query keeps all", query: "", expected: []int64{1, 2, 3}},
		{name: "blank query keeps all", query: "   ", expected: []int64{1, 2, 3}},
		{name: "case-insensitive match", query: "BITcoin", expected: []int64{1, 3}},
		{name: "substring match", query: "ther", expected: []int64{2}},
		{name: "no match", query: "solana", expected: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterOptions(options, tt.query)
			assert.NotNil(t, got)
			ids := make([]int64, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFindOption(t *testing.T) {
	options := []Option{{ID: 7, Name: "Test Bank"}}

	o, ok := FindOption(options, 7)
	assert.True(t, ok)
	assert.Equal(t, "Test Bank", o.Name)

	_, ok = FindOption(options, 8)
	assert.False(t, ok)
}
