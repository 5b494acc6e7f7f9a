// Package validation holds the schema applied to the acara create form.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"acaradashboard/internal/domain"
)

// MaxImageSize is the largest accepted poster, in bytes.
const MaxImageSize = 5000000

// AcceptedImageTypes are the MIME types accepted for the poster.
var AcceptedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

// Tags reported for the image rules; they map to messages below.
const (
	tagImageRequired = "image_required"
	tagImageMaxSize  = "image_max_size"
	tagImageType     = "image_type"
)

const requiredMessage = "Required"

// ImageTooLargeMessage is reported for posters over MaxImageSize.
const ImageTooLargeMessage = "Max file size is 5MB."

// messages maps field name and failed tag to the message shown next to the field.
var messages = map[string]map[string]string{
	"image": {
		tagImageRequired: "Image is required.",
		tagImageMaxSize:  ImageTooLargeMessage,
		tagImageType:     ".jpg, .jpeg, .png and .webp files are accepted.",
	},
	"name":              {"min": "Nama Acara must be at least 2 characters."},
	"pembicara":         {"min": "Nama Pembicara must be at least 2 characters."},
	"jabatan_pembicara": {"min": "Jabatan Pembicara must be at least 2 characters."},
	"tempat":            {"min": "Tempat must be at least 2 characters."},
	"tanggal":           {"required": "Tanggal pelaksanaan wajib diisi"},
	"description":       {"min": "Description must be at least 10 characters."},
	"is_free":           {"required": "Expected boolean"},
}

// AcaraSchema validates create-form submissions.
type AcaraSchema struct {
	validate *validator.Validate
}

// NewAcaraSchema returns the validator for the acara create form.
func NewAcaraSchema() *AcaraSchema {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateImage, domain.AcaraForm{})
	return &AcaraSchema{validate: v}
}

// Validate checks every field of the form and returns either the validated
// values or one message per invalid field. It has no side effects.
func (s *AcaraSchema) Validate(form *domain.AcaraForm) (*domain.ValidatedAcara, domain.FieldErrors) {
	if form == nil {
		form = &domain.AcaraForm{}
	}
	if err := s.validate.Struct(form); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, domain.FieldErrors{"form": err.Error()}
		}
		fields := make(domain.FieldErrors, len(verrs))
		for _, fe := range verrs {
			name := fe.Field()
			if _, seen := fields[name]; seen {
				continue
			}
			fields[name] = messageFor(name, fe.Tag())
		}
		return nil, fields
	}
	return &domain.ValidatedAcara{
		Image:            form.Image[0],
		Name:             form.Name,
		Pembicara:        form.Pembicara,
		JabatanPembicara: form.JabatanPembicara,
		Slot:             *form.Slot,
		Tempat:           form.Tempat,
		Tanggal:          *form.Tanggal,
		IsFree:           *form.IsFree,
		Category:         *form.Category,
		Harga:            *form.Harga,
		Description:      form.Description,
	}, nil
}

func messageFor(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return requiredMessage
}

// validateImage applies the poster rules in order and reports the first one
// that fails.
func validateImage(sl validator.StructLevel) {
	form := sl.Current().Interface().(domain.AcaraForm)
	switch {
	case len(form.Image) != 1:
		sl.ReportError(form.Image, "image", "Image", tagImageRequired, "")
	case form.Image[0].Size > MaxImageSize:
		sl.ReportError(form.Image, "image", "Image", tagImageMaxSize, "")
	case !isAcceptedImageType(form.Image[0].ContentType):
		sl.ReportError(form.Image, "image", "Image", tagImageType, "")
	}
}

func isAcceptedImageType(contentType string) bool {
	for _, t := range AcceptedImageTypes {
		if contentType == t {
			return true
		}
	}
	return false
}
