package controllers

import (
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"acaradashboard/internal/currency"
	"acaradashboard/internal/domain"
)

// tanggalLayouts are the accepted encodings of the tanggal form field.
var tanggalLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02",
}

// bindAcaraForm maps a parsed multipart form onto domain.AcaraForm. Missing
// pointer fields stay nil so the schema can tell missing from empty. The
// returned func closes the opened image files.
func bindAcaraForm(mf *multipart.Form) (*domain.AcaraForm, func(), error) {
	form := &domain.AcaraForm{
		Name:             first(mf.Value, "name"),
		Pembicara:        first(mf.Value, "pembicara"),
		JabatanPembicara: first(mf.Value, "jabatan_pembicara"),
		Tempat:           first(mf.Value, "tempat"),
		Description:      first(mf.Value, "description"),
		Slot:             optional(mf.Value, "slot"),
		Category:         optional(mf.Value, "category"),
		Tanggal:          parseTanggal(mf.Value),
		IsFree:           parseIsFree(mf.Value),
	}
	if h := optional(mf.Value, "harga"); h != nil {
		// The price input may send its display form ("Rp150.000").
		raw := currency.ParseRupiah(*h)
		form.Harga = &raw
	}

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	for _, fh := range mf.File["image"] {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, f)
		form.Image = append(form.Image, domain.FileUpload{
			Filename:    fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}
	return form, closeAll, nil
}

func first(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func optional(values map[string][]string, key string) *string {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return nil
	}
	s := v[0]
	return &s
}

// parseTanggal returns nil when tanggal is missing or not a date.
func parseTanggal(values map[string][]string) *time.Time {
	s := optional(values, "tanggal")
	if s == nil {
		return nil
	}
	for _, layout := range tanggalLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(*s)); err == nil {
			return &t
		}
	}
	return nil
}

// parseIsFree defaults to true when is_free is absent and returns nil when it
// is not a boolean.
func parseIsFree(values map[string][]string) *bool {
	s := optional(values, "is_free")
	if s == nil {
		v := true
		return &v
	}
	if *s == "on" {
		v := true
		return &v
	}
	v, err := strconv.ParseBool(*s)
	if err != nil {
		return nil
	}
	return &v
}
