package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

func TestPageClamp(t *testing.T) {
	cases := []struct {
		name           string
		in             repository.Page
		wantNum, wantSize int
	}{
		{"zero value", repository.Page{}, 1, 1},
		{"negative page", repository.Page{Number: -3, Size: 20}, 1, 20},
		{"zero size", repository.Page{Number: 2, Size: 0}, 2, 1},
		{"oversized", repository.Page{Number: 1, Size: 500}, 1, 100},
		{"at the cap", repository.Page{Number: 4, Size: 100}, 4, 100},
		{"normal", repository.Page{Number: 3, Size: 25}, 3, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Clamp()
			assert.Equal(t, c.wantNum, got.Number)
			assert.Equal(t, c.wantSize, got.Size)
			assert.GreaterOrEqual(t, got.Size, 1)
			assert.LessOrEqual(t, got.Size, repository.MaxPageSize)
		})
	}
}

func TestPageOffset(t *testing.T) {
	p := repository.Page{Number: 3, Size: 25}.Clamp()
	assert.Equal(t, 50, p.Offset())

	p = repository.Page{}.Clamp()
	assert.Equal(t, 0, p.Offset())
}
