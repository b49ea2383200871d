package shared

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  toyota   corolla ", "Toyota Corolla"},
		{"PEARL WHITE", "Pearl White"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.in))
		})
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "NZE1413001234", NormalizeIdentifier(" nze141 3001234 "))
	assert.Equal(t, "", NormalizeIdentifier("  "))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "owner@dealer.test", NormalizeEmail("  Owner@Dealer.TEST "))
}

func TestRoundMoney(t *testing.T) {
	assert.True(t, decimal.RequireFromString("10.13").Equal(RoundMoney(decimal.RequireFromString("10.125"))))
}

func TestDomainError_IsMatchesByCode(t *testing.T) {
	wrapped := WrapDomainError("NOT_FOUND", "Batch not found", assert.AnError)

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.NotErrorIs(t, wrapped, ErrConflict)
	assert.Contains(t, wrapped.Error(), "Batch not found")
}

func TestFilter_Normalize(t *testing.T) {
	f := Filter{Page: 0, PageSize: 500}.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, MaxPageSize, f.PageSize)
	assert.NotNil(t, f.Filters)

	f = Filter{Page: 3, PageSize: 0}.Normalize()
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, 40, f.Offset())
}

func TestNewPaginated(t *testing.T) {
	p := NewPaginated([]int{1, 2}, 41, 1, 20)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPaginated([]int{}, 0, 1, 20)
	assert.Equal(t, 0, p.TotalPages)
}
