package table

import (
	"encoding/json"
	"testing"

	"acaradashboard/internal/currency"
	"acaradashboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns_Order(t *testing.T) {
	var ids []string
	for _, c := range Columns() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"thumbnailUrl", "name", "category", "harga", "description", "is_public", "actions"}, ids)
}

func TestColumns_Filters(t *testing.T) {
	cols := map[string]Column{}
	for _, c := range Columns() {
		cols[c.ID] = c
	}

	require.NotNil(t, cols["name"].Filter)
	assert.Equal(t, "text", cols["name"].Filter.Variant)
	assert.Equal(t, "Cari acara...", cols["name"].Filter.Placeholder)

	require.NotNil(t, cols["category"].Filter)
	assert.Equal(t, "multiSelect", cols["category"].Filter.Variant)
	assert.Equal(t, []Option{
		{Label: "Seminar", Value: "seminar"},
		{Label: "Workshop", Value: "workshop"},
		{Label: "Talkshow", Value: "talkshow"},
		{Label: "Webinar", Value: "webinar"},
	}, cols["category"].Filter.Options)

	assert.Nil(t, cols["harga"].Filter)
	assert.True(t, cols["description"].Truncate)
	assert.Equal(t, "300px", cols["description"].MaxWidth)
}

func TestRender(t *testing.T) {
	records := []*domain.Acara{
		{ID: "a1", Name: "Tech Talk", Category: "talkshow", IsFree: true, Harga: "0", Description: "d", ThumbnailURL: "https://cdn.test/a.jpg"},
		{ID: "a2", Name: "Go Workshop", Category: "workshop", Harga: "150000", IsPublic: true},
	}

	view := Render(records)
	require.Len(t, view.Rows, 2)
	assert.Len(t, view.Columns, 7)

	free := view.Rows[0]
	assert.Equal(t, "a1", free.ID)
	assert.Equal(t, Cell{Kind: KindImage, Value: "https://cdn.test/a.jpg", Alt: "Tech Talk"}, free.Cells["thumbnailUrl"])
	assert.Equal(t, Cell{Kind: KindBadge, Value: "Gratis", Variant: VariantDefault}, free.Cells["harga"])
	assert.Equal(t, Cell{Kind: KindBadge, Value: "Non-Aktif", Variant: VariantDefault}, free.Cells["is_public"])
	assert.Equal(t, Cell{Kind: KindBadge, Value: "talkshow", Variant: VariantOutline}, free.Cells["category"])

	paid := view.Rows[1]
	assert.Equal(t, Cell{Kind: KindBadge, Value: currency.FormatIDR(150000), Variant: VariantOutline}, paid.Cells["harga"])
	assert.Equal(t, Cell{Kind: KindBadge, Value: "Aktif", Variant: VariantDestructive}, paid.Cells["is_public"])

	actions := paid.Cells["actions"].Actions
	require.Len(t, actions, 2)
	assert.Equal(t, "/dashboard/acara/a2", actions[0].Href)
	assert.False(t, actions[0].Disabled)
	assert.Equal(t, "delete", actions[1].ID)
	assert.True(t, actions[1].Disabled)
}

func TestRender_Empty(t *testing.T) {
	view := Render(nil)
	assert.NotNil(t, view.Rows)
	assert.Empty(t, view.Rows)

	b, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"rows":[]`)
}
