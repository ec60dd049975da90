package browse

import (
	"testing"

	"github.com/dmitrijs2005/uniswap/internal/client/models"
	"github.com/dmitrijs2005/uniswap/internal/client/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []models.Item {
	return []models.Item{
		{
			ID: "1", Title: "Desk Lamp", Description: "LED", Condition: "good", Type: models.ItemTypeFree,
			Category: normalize.Category("electronics"), Location: normalize.Location("1"),
			Owner: &models.UserSummary{Username: "rafi"},
		},
		{
			ID: "2", Title: "Calculus book", Description: "3rd edition", Condition: "fair", Type: models.ItemTypeSwap,
			Category: normalize.Category("textbooks"), Location: normalize.Location("33"),
			Owner: &models.UserSummary{Username: "nila"},
		},
		{ID: "3", Title: "Chair", Type: models.ItemTypeRent, Category: normalize.Category("furniture")},
	}
}

func ids(items []models.Item) []string {
	out := []string{}
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestItemFilter(t *testing.T) {
	items := sampleItems()
	tests := []struct {
		name string
		f    ItemFilter
		want []string
	}{
		{"none", ItemFilter{}, []string{"1", "2", "3"}},
		{"search title", ItemFilter{Search: "lamp"}, []string{"1"}},
		{"search description", ItemFilter{Search: "EDITION"}, []string{"2"}},
		{"search owner", ItemFilter{Search: "nil"}, []string{"2"}},
		{"category slug", ItemFilter{Category: "furniture"}, []string{"3"}},
		{"category position", ItemFilter{Category: "1"}, []string{"2"}},
		{"condition", ItemFilter{Condition: "Good"}, []string{"1"}},
		{"type", ItemFilter{Type: "swap"}, []string{"2"}},
		{"location type", ItemFilter{LocationType: normalize.OffCampus}, []string{"2"}},
		{"location", ItemFilter{Location: "1"}, []string{"1"}},
		{"combined", ItemFilter{Search: "lamp", Type: "swap"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.f.Items(items)))
		})
	}
}

func TestParseItemFilter(t *testing.T) {
	f, err := ParseItemFilter([]string{"-type", "free", "-location-type=on-campus", "desk", "lamp"})
	require.NoError(t, err)
	assert.Equal(t, ItemFilter{Search: "desk lamp", Type: "free", LocationType: "on-campus"}, f)
	assert.True(t, f.Active())

	_, err = ParseItemFilter([]string{"-colour", "red"})
	assert.Error(t, err)

	f, err = ParseItemFilter(nil)
	require.NoError(t, err)
	assert.False(t, f.Active())
}

func TestTuitionFilter(t *testing.T) {
	ts := []models.Tuition{
		{TuitionID: 1, Subject: "Physics", Clazz: "HSC", Status: models.TuitionAvailable, User: &models.UserSummary{Username: "rafi"}},
		{TuitionID: 2, Subject: "Higher Math", Clazz: "SSC", Status: models.TuitionTaken},
	}
	pick := func(f TuitionFilter) []int64 {
		out := []int64{}
		for _, t := range f.Tuitions(ts) {
			out = append(out, t.TuitionID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 2}, pick(TuitionFilter{}))
	assert.Equal(t, []int64{1}, pick(TuitionFilter{Search: "RAFI"}))
	assert.Equal(t, []int64{2}, pick(TuitionFilter{Subject: "math"}))
	assert.Equal(t, []int64{1}, pick(TuitionFilter{Class: "HSC"}))
	assert.Equal(t, []int64{2}, pick(TuitionFilter{Status: "taken"}))

	f, err := ParseTuitionFilter([]string{"-status", "available", "phys"})
	require.NoError(t, err)
	assert.Equal(t, TuitionFilter{Search: "phys", Status: "available"}, f)
}
