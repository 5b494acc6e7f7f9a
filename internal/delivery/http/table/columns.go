// Package table declares the columns of the acara listing and renders
// records into cells.
package table

import (
	"strings"

	"acaradashboard/internal/currency"
	"acaradashboard/internal/domain"
)

// Cell kinds.
const (
	KindImage   = "image"
	KindText    = "text"
	KindBadge   = "badge"
	KindActions = "actions"
)

// Badge variants.
const (
	VariantDefault     = "default"
	VariantOutline     = "outline"
	VariantDestructive = "destructive"
)

// Status labels for is_public.
const (
	StatusActive   = "Aktif"
	StatusInactive = "Non-Aktif"
)

// Option is a filter choice.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Filter describes how a column can be filtered in the toolbar.
type Filter struct {
	Label       string   `json:"label"`
	Variant     string   `json:"variant"` // "text" or "multiSelect"
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []Option `json:"options,omitempty"`
}

// Action is a per-row action.
type Action struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Href     string `json:"href,omitempty"`
	Disabled bool   `json:"disabled"`
}

// Cell is a rendered value of one column for one record.
type Cell struct {
	Kind    string   `json:"kind"`
	Value   any      `json:"value,omitempty"`
	Variant string   `json:"variant,omitempty"`
	Alt     string   `json:"alt,omitempty"`
	Actions []Action `json:"actions,omitempty"`
}

// Column is one declared table column.
type Column struct {
	ID          string  `json:"id"`
	AccessorKey string  `json:"accessorKey,omitempty"`
	Header      string  `json:"header"`
	Sortable    bool    `json:"sortable"`
	Filter      *Filter `json:"filter,omitempty"`
	Truncate    bool    `json:"truncate,omitempty"`
	MaxWidth    string  `json:"maxWidth,omitempty"`

	render func(*domain.Acara) Cell
}

// CategoryOptions are the category filter choices.
func CategoryOptions() []Option {
	opts := make([]Option, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		opts = append(opts, Option{Label: strings.ToUpper(c[:1]) + c[1:], Value: c})
	}
	return opts
}

// EditPath returns the dashboard path of a record's form.
func EditPath(id string) string {
	return domain.AcaraListPath + "/" + id
}

// Columns returns the acara listing columns in display order.
func Columns() []Column {
	return []Column{
		{
			ID:          "thumbnailUrl",
			AccessorKey: "thumbnailUrl",
			Header:      "IMAGE",
			render: func(a *domain.Acara) Cell {
				return Cell{Kind: KindImage, Value: a.ThumbnailURL, Alt: a.Name}
			},
		},
		{
			ID:          "name",
			AccessorKey: "name",
			Header:      "Name Acara",
			Sortable:    true,
			Filter:      &Filter{Label: "Name", Variant: "text", Placeholder: "Cari acara..."},
			render: func(a *domain.Acara) Cell {
				return Cell{Kind: KindText, Value: a.Name}
			},
		},
		{
			ID:          "category",
			AccessorKey: "category",
			Header:      "Category",
			Sortable:    true,
			Filter:      &Filter{Label: "categories", Variant: "multiSelect", Options: CategoryOptions()},
			render: func(a *domain.Acara) Cell {
				return Cell{Kind: KindBadge, Value: a.Category, Variant: VariantOutline}
			},
		},
		{
			ID:          "harga",
			AccessorKey: "harga",
			Header:      "PRICE",
			render: func(a *domain.Acara) Cell {
				if a.IsFree {
					return Cell{Kind: KindBadge, Value: currency.FreeLabel, Variant: VariantDefault}
				}
				return Cell{Kind: KindBadge, Value: currency.FormatPrice(false, a.Harga), Variant: VariantOutline}
			},
		},
		{
			ID:          "description",
			AccessorKey: "description",
			Header:      "DESCRIPTION",
			Truncate:    true,
			MaxWidth:    "300px",
			render: func(a *domain.Acara) Cell {
				return Cell{Kind: KindText, Value: a.Description}
			},
		},
		{
			ID:          "is_public",
			AccessorKey: "is_public",
			Header:      "Status",
			Sortable:    true,
			render: func(a *domain.Acara) Cell {
				if a.IsPublic {
					return Cell{Kind: KindBadge, Value: StatusActive, Variant: VariantDestructive}
				}
				return Cell{Kind: KindBadge, Value: StatusInactive, Variant: VariantDefault}
			},
		},
		{
			ID: "actions",
			render: func(a *domain.Acara) Cell {
				return Cell{Kind: KindActions, Actions: []Action{
					{ID: "edit", Label: "Update", Href: EditPath(a.ID)},
					// Deleting records is not supported.
					{ID: "delete", Label: "Delete", Disabled: true},
				}}
			},
		},
	}
}

// Row holds the cells of one record keyed by column ID.
type Row struct {
	ID    string          `json:"id"`
	Cells map[string]Cell `json:"cells"`
}

// View is the rendered table.
// swagger:model TableView
type View struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Render applies the columns to records, preserving record order.
func Render(records []*domain.Acara) View {
	cols := Columns()
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		cells := make(map[string]Cell, len(cols))
		for _, c := range cols {
			cells[c.ID] = c.render(rec)
		}
		rows = append(rows, Row{ID: rec.ID, Cells: cells})
	}
	return View{Columns: cols, Rows: rows}
}
