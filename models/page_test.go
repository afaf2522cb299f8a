package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
		sort string
		want PageRequest
	}{
		{"defaults", 0, 10, "id,asc", PageRequest{Page: 0, Size: 10, SortBy: "id"}},
		{"negative page clamped", -3, 10, "", PageRequest{Page: 0, Size: 10, SortBy: "id"}},
		{"zero size defaulted", 2, 0, "", PageRequest{Page: 2, Size: DefaultPageSize, SortBy: "id"}},
		{"oversize capped", 0, 5000, "", PageRequest{Page: 0, Size: MaxPageSize, SortBy: "id"}},
		{"sort by price desc", 1, 20, "price,desc", PageRequest{Page: 1, Size: 20, SortBy: "price", SortDesc: true}},
		{"unknown column falls back", 0, 10, "deleted,desc", PageRequest{Page: 0, Size: 10, SortBy: "id", SortDesc: true}},
		{"garbage sort falls back", 0, 10, "name;drop table", PageRequest{Page: 0, Size: 10, SortBy: "id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageRequest(tt.page, tt.size, tt.sort))
		})
	}
}

func TestPageRequestOrder(t *testing.T) {
	assert.Equal(t, "id asc", NewPageRequest(0, 10, "id,asc").Order())
	assert.Equal(t, "id desc", NewPageRequest(0, 10, "id,desc").Order())
	assert.Equal(t, "price desc, id asc", NewPageRequest(0, 10, "price,desc").Order())
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, NewPageRequest(0, 10, "").Offset())
	assert.Equal(t, 30, NewPageRequest(3, 10, "").Offset())
}

func TestNewPage(t *testing.T) {
	req := NewPageRequest(1, 10, "")

	page := NewPage([]int{1, 2, 3}, req, 23)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.EqualValues(t, 23, page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)

	empty := NewPage[int](nil, NewPageRequest(0, 10, ""), 0)
	assert.NotNil(t, empty.Content)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestEnumValidity(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("FOOD").Valid())
	assert.False(t, Category("").Valid())

	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusUnavailable.Valid())
	assert.False(t, Status("SOLD_OUT").Valid())
}
