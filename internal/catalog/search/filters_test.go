package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

func TestFiltersMatch(t *testing.T) {
	partner := domain.Roastery{ID: "roast-1", Name: "Bean Brothers", IsPartner: true}
	outsider := domain.Roastery{ID: "roast-2", Name: "Coffee Libre"}

	product := domain.Product{
		ID:         "prod-1",
		RoasteryID: "roast-1",
		RoastLevel: "라이트",
		Processing: "워시드",
		SaleStatus: domain.SaleStatusActive,
	}

	t.Run("no filters pass everything active", func(t *testing.T) {
		assert.True(t, Filters{}.Match(product, partner))
		assert.True(t, Filters{}.Match(product, outsider))
	})

	t.Run("partner filter", func(t *testing.T) {
		f := Filters{OnlyPartners: true}
		assert.True(t, f.Match(product, partner))
		assert.False(t, f.Match(product, outsider))
	})

	t.Run("roast level filter", func(t *testing.T) {
		f := Filters{RoastLevels: []string{"라이트", "미디엄"}}
		assert.True(t, f.Match(product, partner))

		dark := product
		dark.RoastLevel = "다크"
		assert.False(t, f.Match(dark, partner))
	})

	t.Run("processing filter", func(t *testing.T) {
		f := Filters{ProcessingMethods: []string{"내추럴"}}
		assert.False(t, f.Match(product, partner))

		natural := product
		natural.Processing = "내추럴"
		assert.True(t, f.Match(natural, partner))
	})

	t.Run("discontinued excluded by default", func(t *testing.T) {
		gone := product
		gone.SaleStatus = domain.SaleStatusDiscontinued
		assert.False(t, Filters{}.Match(gone, partner))
		assert.True(t, Filters{IncludeDiscontinued: true}.Match(gone, partner))
	})

	t.Run("limited always kept", func(t *testing.T) {
		limited := product
		limited.SaleStatus = domain.SaleStatusLimited
		assert.True(t, Filters{}.Match(limited, partner))
	})

	t.Run("filters compose", func(t *testing.T) {
		f := Filters{
			OnlyPartners:      true,
			RoastLevels:       []string{"라이트"},
			ProcessingMethods: []string{"워시드"},
		}
		assert.True(t, f.Match(product, partner))
		assert.False(t, f.Match(product, outsider))

		wrongRoast := product
		wrongRoast.RoastLevel = "다크"
		assert.False(t, f.Match(wrongRoast, partner))
	})
}
