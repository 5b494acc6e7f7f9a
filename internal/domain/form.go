package domain

import (
	"io"
	"time"
)

// FileUpload is a single file attached to a form submission.
type FileUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.ReadSeeker
}

// AcaraForm is the raw create-form input. Pointer fields distinguish a
// missing value from an empty one.
type AcaraForm struct {
	Image            []FileUpload `json:"image"`
	Name             string       `json:"name" validate:"min=2"`
	Pembicara        string       `json:"pembicara" validate:"min=2"`
	JabatanPembicara string       `json:"jabatan_pembicara" validate:"min=2"`
	Slot             *string      `json:"slot" validate:"required"`
	Tempat           string       `json:"tempat" validate:"min=2"`
	Tanggal          *time.Time   `json:"tanggal" validate:"required"`
	IsFree           *bool        `json:"is_free" validate:"required"`
	Category         *string      `json:"category" validate:"required"`
	Harga            *string      `json:"harga" validate:"required"`
	Description      string       `json:"description" validate:"min=10"`
}

// ValidatedAcara holds the values of a form that passed validation.
type ValidatedAcara struct {
	Image            FileUpload
	Name             string
	Pembicara        string
	JabatanPembicara string
	Slot             string
	Tempat           string
	Tanggal          time.Time
	IsFree           bool
	Category         string
	Harga            string
	Description      string
}
