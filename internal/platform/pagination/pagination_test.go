package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	p := FromQuery(url.Values{"page": {"3"}, "limit": {"500"}})
	assert.Equal(t, Params{Page: 3, Limit: MaxLimit}, p)

	p = FromQuery(url.Values{"page": {"x"}, "limit": {"-1"}})
	assert.Equal(t, Params{Page: 1, Limit: DefaultLimit}, p)
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{3, 4}, Window(items, Params{Page: 2, Limit: 2}))
	assert.Equal(t, []int{5}, Window(items, Params{Page: 3, Limit: 2}))
	assert.Empty(t, Window(items, Params{Page: 9, Limit: 2}))
}

func TestMapKeepsMetadata(t *testing.T) {
	r := NewResult([]int{1, 2}, 7, Params{Page: 2, Limit: 2})
	out := Map(r, func(i int) string { return string(rune('a' + i)) })

	assert.Equal(t, []string{"b", "c"}, out.Items)
	assert.Equal(t, 7, out.Total)
	assert.Equal(t, 2, out.Page)
}
