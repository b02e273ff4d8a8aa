package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanscout/beanscout/internal/catalog/domain"
	"github.com/beanscout/beanscout/internal/catalog/repository"
	"github.com/beanscout/beanscout/internal/catalog/search"
)

// newFixtureEngine seeds a fresh in-memory catalog covering every matching
// phase: three roasteries with listings, one roastery without, canonical
// coffees with aliases, unlinked and dangling listings.
func newFixtureEngine(t *testing.T) (*search.Engine, *repository.MemoryCatalogStore) {
	t.Helper()
	store := repository.NewMemoryCatalogStore()

	roasteries := []domain.Roastery{
		{ID: "roast-1", Name: "빈브라더스", Location: "서울", IsPartner: true},
		{ID: "roast-2", Name: "커피리브레", Location: "서울"},
		{ID: "roast-3", Name: "블루보틀", Location: "도쿄"},
		{ID: "roast-4", Name: "예가체프 로스터스", Location: "부산", IsPartner: true},
	}
	for _, r := range roasteries {
		require.NoError(t, store.Seed(domain.KindRoastery, r.ID, r))
	}

	coffees := []domain.StandardCoffee{
		{
			ID:               "std-1",
			PrimaryName:      "예가체프",
			AlternativeNames: []string{"Yirgacheffe"},
			Origin:           "에티오피아",
			Region:           "예가체프",
		},
		{ID: "std-2", PrimaryName: "케냐 AA", Origin: "케냐"},
		{ID: "std-3", PrimaryName: "게이샤", Origin: "파나마"},
	}
	for _, c := range coffees {
		require.NoError(t, store.Seed(domain.KindStandardCoffee, c.ID, c))
	}

	seed := []domain.Product{
		{ID: "p1", RoasteryID: "roast-1", StandardCoffeeID: "std-1", Name: "에티오피아 예가체프", Price: 25000, RoastLevel: "라이트", Processing: "워시드", InStock: true, SaleStatus: domain.SaleStatusActive},
		{ID: "p2", RoasteryID: "roast-2", StandardCoffeeID: "std-1", Name: "예가체프 G1", Price: 28000, RoastLevel: "미디엄", Processing: "내추럴", InStock: true, SaleStatus: domain.SaleStatusActive},
		{ID: "p3", RoasteryID: "roast-3", StandardCoffeeID: "std-1", Name: "Yirgacheffe", Price: 32000, RoastLevel: "다크", Processing: "워시드", InStock: true, SaleStatus: domain.SaleStatusActive},
		{ID: "p4", RoasteryID: "roast-1", StandardCoffeeID: "std-2", Name: "케냐 AA", Price: 30000, RoastLevel: "미디엄", Processing: "워시드", InStock: true, SaleStatus: domain.SaleStatusActive},
		{ID: "p5", RoasteryID: "roast-2", StandardCoffeeID: "std-1", Name: "예가체프 품절", Price: 20000, RoastLevel: "라이트", Processing: "내추럴", InStock: false, SaleStatus: domain.SaleStatusActive},
		{ID: "p6", RoasteryID: "roast-1", Name: "하우스 블렌드", Price: 10000, RoastLevel: "미디엄", InStock: true, SaleStatus: domain.SaleStatusActive},
		{ID: "p7", RoasteryID: "roast-gone", StandardCoffeeID: "std-1", Name: "예가체프 내추럴", Price: 27000, RoastLevel: "라이트", Processing: "워시드", InStock: true, SaleStatus: domain.SaleStatusActive},
		{ID: "p8", RoasteryID: "roast-2", StandardCoffeeID: "std-3", Name: "파나마 게이샤", Price: 45000, RoastLevel: "미디엄", Processing: "워시드", InStock: true, SaleStatus: domain.SaleStatusActive},
		{ID: "p9", RoasteryID: "roast-2", StandardCoffeeID: "std-1", Name: "예가체프 올드크롭", Price: 100000, RoastLevel: "다크", Processing: "내추럴", InStock: true, SaleStatus: domain.SaleStatusDiscontinued},
		{ID: "p10", RoasteryID: "roast-2", Name: "스페셜 게이샤", Farm: "데보라농장", Price: 9000, RoastLevel: "라이트", Processing: "내추럴", InStock: true, SaleStatus: domain.SaleStatusActive},
	}
	for _, p := range seed {
		require.NoError(t, store.Seed(domain.KindProduct, p.ID, p))
	}

	return search.NewEngine(search.NewCache(store)), store
}

func TestSearchByCoffeeName(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "예가체프", search.Filters{})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	result := out.Results[0]
	assert.Equal(t, "std-1", result.Coffee.ID)
	assert.False(t, result.Synthetic)
	require.Len(t, result.Products, 3)
	assert.Equal(t, int64(25000), result.LowestPrice)
	assert.Equal(t, domain.PriceRange{Min: 25000, Max: 32000}, result.PriceRange)
	assert.InDelta(t, 28333.333, result.AvgPrice, 0.001)

	// The dangling listing is reported, not silently dropped
	assert.Contains(t, out.SkippedProducts, "p7")
}

func TestSearchByOrigin(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "파나마", search.Filters{})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "std-3", out.Results[0].Coffee.ID)
}

func TestSearchRoastLevelFilter(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "에티오피아", search.Filters{RoastLevels: []string{"라이트"}})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	result := out.Results[0]
	require.Len(t, result.Products, 1)
	assert.Equal(t, "p1", result.Products[0].Product.ID)
	assert.Equal(t, int64(25000), result.LowestPrice)
	assert.Equal(t, 25000.0, result.AvgPrice)
}

func TestSearchPartnersOnly(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "예가체프", search.Filters{OnlyPartners: true})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	result := out.Results[0]
	require.Len(t, result.Products, 1)
	assert.Equal(t, "roast-1", result.Products[0].Roastery.ID)
}

func TestSearchIncludeDiscontinued(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "예가체프", search.Filters{IncludeDiscontinued: true})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	result := out.Results[0]
	require.Len(t, result.Products, 4)
	assert.Equal(t, domain.PriceRange{Min: 25000, Max: 100000}, result.PriceRange)
	assert.Equal(t, 46250.0, result.AvgPrice)
}

func TestSearchRoasteryGrouping(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "빈브라더스", search.Filters{})
	require.NoError(t, err)
	require.Len(t, out.Results, 3)

	// Canonical groups first, cheapest first; the unlinked listing becomes a
	// synthetic singleton at the end
	assert.Equal(t, "std-1", out.Results[0].Coffee.ID)
	require.Len(t, out.Results[0].Products, 1)
	assert.Equal(t, "p1", out.Results[0].Products[0].Product.ID)

	assert.Equal(t, "std-2", out.Results[1].Coffee.ID)

	synthetic := out.Results[2]
	assert.True(t, synthetic.Synthetic)
	assert.Equal(t, "virtual-p6", synthetic.Coffee.ID)
	assert.Equal(t, "하우스 블렌드", synthetic.Coffee.PrimaryName)
	assert.Equal(t, int64(10000), synthetic.LowestPrice)
}

func TestSearchDirectProductFallback(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "데보라", search.Filters{})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)

	result := out.Results[0]
	assert.True(t, result.Synthetic)
	assert.Equal(t, "virtual-p10", result.Coffee.ID)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "p10", result.Products[0].Product.ID)
}

func TestSearchRealGroupsBeforeSynthetic(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	// "게이샤" matches std-3 (cheapest listing 45000) and, directly, the
	// unlinked p10 at 9000. The canonical group still sorts first.
	out, err := engine.Search(context.Background(), "게이샤", search.Filters{})
	require.NoError(t, err)
	require.Len(t, out.Results, 2)

	assert.False(t, out.Results[0].Synthetic)
	assert.Equal(t, "std-3", out.Results[0].Coffee.ID)
	assert.True(t, out.Results[1].Synthetic)
	assert.Equal(t, "virtual-p10", out.Results[1].Coffee.ID)
}

func TestSearchEachProductAppearsOnce(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	for _, query := range []string{"예가체프", "빈브라더스", "게이샤", "에티오피아"} {
		out, err := engine.Search(context.Background(), query, search.Filters{})
		require.NoError(t, err)

		seen := make(map[string]bool)
		for _, result := range out.Results {
			for _, listing := range result.Products {
				assert.False(t, seen[listing.Product.ID], "product %s appeared twice for query %s", listing.Product.ID, query)
				seen[listing.Product.ID] = true
			}
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	for _, query := range []string{"", "   ", "\t"} {
		out, err := engine.Search(context.Background(), query, search.Filters{})
		require.NoError(t, err)
		assert.Empty(t, out.Results)
		assert.Empty(t, out.SkippedProducts)
	}
}

func TestSearchNoMatches(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "콜롬비아", search.Filters{})
	require.NoError(t, err)
	assert.Empty(t, out.Results)
}

func TestSnapshotStaleUntilRefresh(t *testing.T) {
	engine, store := newFixtureEngine(t)

	out, err := engine.Search(context.Background(), "케냐", search.Filters{})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	require.Len(t, out.Results[0].Products, 1)

	// A write that bypasses the command layer stays invisible
	require.NoError(t, store.Seed(domain.KindProduct, "p11", domain.Product{
		ID: "p11", RoasteryID: "roast-2", StandardCoffeeID: "std-2",
		Name: "케냐 AA 탑", Price: 33000, InStock: true, SaleStatus: domain.SaleStatusActive,
	}))

	out, err = engine.Search(context.Background(), "케냐", search.Filters{})
	require.NoError(t, err)
	require.Len(t, out.Results[0].Products, 1)

	require.NoError(t, engine.Refresh(context.Background()))

	out, err = engine.Search(context.Background(), "케냐", search.Filters{})
	require.NoError(t, err)
	require.Len(t, out.Results[0].Products, 2)
}

func TestAvailableFilterOptions(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	levels, err := engine.AvailableRoastLevels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"다크", "라이트", "미디엄"}, levels)

	methods, err := engine.AvailableProcessingMethods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"내추럴", "워시드"}, methods)
}

func TestStats(t *testing.T) {
	engine, _ := newFixtureEngine(t)

	stats, err := engine.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalRoasteries)
	assert.Equal(t, 3, stats.TotalStandardCoffees)
	assert.Equal(t, 10, stats.TotalProducts)
	assert.Equal(t, domain.PriceRange{Min: 9000, Max: 100000}, stats.PriceRange)
}
