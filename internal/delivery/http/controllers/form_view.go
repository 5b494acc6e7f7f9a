package controllers

import (
	"time"

	"acaradashboard/internal/delivery/http/table"
	"acaradashboard/internal/domain"
	"acaradashboard/internal/validation"
)

// CreateFormTitle is the title of the create form.
const CreateFormTitle = "Buat Acara Baru"

// FormField describes one input of the create form.
type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder,omitempty"`
	// HiddenWhen names a boolean field that hides this input while true.
	HiddenWhen string `json:"hiddenWhen,omitempty"`
}

// FormDefaults are the initial values of the create form.
type FormDefaults struct {
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	Harga            string    `json:"harga"`
	Description      string    `json:"description"`
	IsFree           bool      `json:"is_free"`
	Tanggal          time.Time `json:"tanggal"`
	Pembicara        string    `json:"pembicara"`
	JabatanPembicara string    `json:"jabatan_pembicara"`
	Tempat           string    `json:"tempat"`
	Slot             string    `json:"slot"`
}

// ImageRules tells the uploader widget what the schema accepts.
type ImageRules struct {
	MaxSize       int64    `json:"maxSize"`
	AcceptedTypes []string `json:"acceptedTypes"`
}

// FormView is the view model of the acara form page.
// swagger:model FormView
type FormView struct {
	AcaraID         string                 `json:"acaraId"`
	Title           string                 `json:"title"`
	Action          string                 `json:"action"`
	Method          string                 `json:"method"`
	SubmitLabel     string                 `json:"submitLabel"`
	State           domain.SubmissionState `json:"state"`
	SubmitDisabled  bool                   `json:"submitDisabled"`
	Defaults        FormDefaults           `json:"defaults"`
	Fields          []FormField            `json:"fields"`
	CategoryOptions []table.Option         `json:"categoryOptions"`
	Image           ImageRules             `json:"image"`
}

// NewCreateFormView returns the create form. acaraID is echoed back but never
// loaded: every form page is a create form. The submit control is disabled
// while state is SubmissionSubmitting.
func NewCreateFormView(acaraID string, now time.Time, state domain.SubmissionState) FormView {
	if state == "" {
		state = domain.SubmissionIdle
	}
	return FormView{
		AcaraID:        acaraID,
		Title:          CreateFormTitle,
		Action:         "/acara",
		Method:         "POST",
		SubmitLabel:    "Tambah Acara",
		State:          state,
		SubmitDisabled: state == domain.SubmissionSubmitting,
		Defaults: FormDefaults{
			IsFree:  true,
			Tanggal: now,
		},
		Fields: []FormField{
			{Name: "image", Label: "Poster Seminar", Type: "file"},
			{Name: "name", Label: "Nama Acara", Type: "text", Placeholder: "Masukkan Nama Acara"},
			{Name: "pembicara", Label: "Nama Pembicara", Type: "text", Placeholder: "Masukkan Nama Pembicara"},
			{Name: "jabatan_pembicara", Label: "Jabatan Pembicara", Type: "text", Placeholder: "Masukkan Nama Jabatan Pembicara"},
			{Name: "category", Label: "Kategori Acara", Type: "select", Placeholder: "Pilih Kategori"},
			{Name: "tanggal", Label: "Tanggal Acara", Type: "datetime"},
			{Name: "tempat", Label: "Tempat Acara", Type: "text", Placeholder: "Audotorium Gedung A"},
			{Name: "slot", Label: "Total Tiket", Type: "number", Placeholder: "30 Tiket"},
			{Name: "is_free", Label: "Acara ini gratis?", Type: "checkbox"},
			{Name: "harga", Label: "Harga Tiket", Type: "currency", Placeholder: "Masukkan harga tiket", HiddenWhen: "is_free"},
			{Name: "description", Label: "Deskripsi", Type: "textarea", Placeholder: "Masukkan deskripsi acara..."},
		},
		CategoryOptions: table.CategoryOptions(),
		Image: ImageRules{
			MaxSize:       validation.MaxImageSize,
			AcceptedTypes: validation.AcceptedImageTypes,
		},
	}
}
