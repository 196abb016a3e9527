package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		total     int64
		size      int
		want      PageWindow
	}{
		{"empty listing", 1, 0, 10, PageWindow{Number: 1, NumPages: 1, Offset: 0, Limit: 10}},
		{"first of two", 1, 13, 10, PageWindow{Number: 1, NumPages: 2, Offset: 0, Limit: 10}},
		{"second of two", 2, 13, 10, PageWindow{Number: 2, NumPages: 2, Offset: 10, Limit: 10}},
		{"past the end clamps to last", 7, 13, 10, PageWindow{Number: 2, NumPages: 2, Offset: 10, Limit: 10}},
		{"zero clamps to first", 0, 13, 10, PageWindow{Number: 1, NumPages: 2, Offset: 0, Limit: 10}},
		{"negative clamps to first", -3, 13, 10, PageWindow{Number: 1, NumPages: 2, Offset: 0, Limit: 10}},
		{"exact multiple", 3, 30, 10, PageWindow{Number: 3, NumPages: 3, Offset: 20, Limit: 10}},
		{"bad size falls back", 1, 5, 0, PageWindow{Number: 1, NumPages: 1, Offset: 0, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.requested, tt.total, tt.size))
		})
	}
}

// page k holds min(S, N-(k-1)*S) items for every valid k.
func TestPaginateItemCounts(t *testing.T) {
	for n := int64(0); n <= 35; n++ {
		for size := 1; size <= 12; size++ {
			w := Paginate(1, n, size)
			var seen int64
			for k := 1; k <= w.NumPages; k++ {
				pw := Paginate(k, n, size)
				assert.Equal(t, k, pw.Number)
				items := n - int64(pw.Offset)
				if items > int64(size) {
					items = int64(size)
				}
				if items < 0 {
					items = 0
				}
				seen += items
			}
			assert.Equal(t, n, seen, "n=%d size=%d", n, size)
		}
	}
}

func TestPageWindowNeighbours(t *testing.T) {
	w := Paginate(2, 25, 10)
	assert.True(t, w.HasPrevious())
	assert.True(t, w.HasNext())

	w = Paginate(1, 5, 10)
	assert.False(t, w.HasPrevious())
	assert.False(t, w.HasNext())
}

func TestPostString(t *testing.T) {
	p := Post{Text: "Тестовый текст длиннее пятнадцати"}
	assert.Equal(t, "Тестовый текст ", p.String())
	assert.Equal(t, "short", Post{Text: "short"}.String())
}
