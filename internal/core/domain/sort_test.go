package domain

import (
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseSortBy(t *testing.T) {
	assert.Equal(t, SortNameDescending, ParseSortBy("name_desc"))
	assert.Equal(t, SortPriceAscending, ParseSortBy("price_asc"))
	assert.Equal(t, SortPriceDescending, ParseSortBy("price_desc"))
	assert.Equal(t, SortNameAscending, ParseSortBy(""))
	assert.Equal(t, SortNameAscending, ParseSortBy("anything else"))
}

func sortSummaries(summaries []MotorbikeSummary, sortBy SortBy) []string {
	sorted := make([]MotorbikeSummary, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortBy.Less(&sorted[i], &sorted[j])
	})
	names := make([]string, len(sorted))
	for i := range sorted {
		names[i] = sorted[i].Name
	}
	return names
}

func TestSortOrderings(t *testing.T) {
	summaries := []MotorbikeSummary{
		{ID: uuid.New(), Name: "Yamaha Exciter", PriceDay: 15, PriceWeek: 90, PriceMonth: 300},
		{ID: uuid.New(), Name: "Honda Wave", PriceDay: 10, PriceWeek: 60, PriceMonth: 200},
		{ID: uuid.New(), Name: "Vespa Sprint", PriceDay: 20, PriceWeek: 120, PriceMonth: 400},
	}

	assert.Equal(t, []string{"Honda Wave", "Vespa Sprint", "Yamaha Exciter"},
		sortSummaries(summaries, SortNameAscending))
	assert.Equal(t, []string{"Yamaha Exciter", "Vespa Sprint", "Honda Wave"},
		sortSummaries(summaries, SortNameDescending))
	assert.Equal(t, []string{"Honda Wave", "Yamaha Exciter", "Vespa Sprint"},
		sortSummaries(summaries, SortPriceAscending))
	assert.Equal(t, []string{"Vespa Sprint", "Yamaha Exciter", "Honda Wave"},
		sortSummaries(summaries, SortPriceDescending))
}

func TestSortPriceDescendingReversesAscending(t *testing.T) {
	summaries := []MotorbikeSummary{
		{ID: uuid.New(), Name: "A", PriceDay: 1},
		{ID: uuid.New(), Name: "B", PriceDay: 3},
		{ID: uuid.New(), Name: "C", PriceDay: 2},
	}

	asc := sortSummaries(summaries, SortPriceAscending)
	desc := sortSummaries(summaries, SortPriceDescending)

	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSortTieBreaks(t *testing.T) {
	idA := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	idB := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	t.Run("equal names order by id", func(t *testing.T) {
		a := MotorbikeSummary{ID: idA, Name: "Same"}
		b := MotorbikeSummary{ID: idB, Name: "Same"}
		assert.True(t, SortNameAscending.Less(&a, &b))
		assert.False(t, SortNameAscending.Less(&b, &a))
		assert.True(t, SortNameDescending.Less(&a, &b))
	})

	t.Run("equal prices order by name", func(t *testing.T) {
		a := MotorbikeSummary{ID: idA, Name: "Alpha", PriceDay: 5}
		b := MotorbikeSummary{ID: idB, Name: "Beta", PriceDay: 5}
		assert.True(t, SortPriceAscending.Less(&a, &b))
		assert.True(t, SortPriceDescending.Less(&a, &b))
	})
}
