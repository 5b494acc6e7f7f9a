package domain

import (
	"context"
	"time"
)

// AcaraCollection is the document collection (or table) holding event records.
const AcaraCollection = "acara"

// ThumbnailFolder is the blob storage folder for event posters.
const ThumbnailFolder = "thumbnail_acara"

// Event categories offered by the create form and the listing filter.
const (
	CategorySeminar  = "seminar"
	CategoryWorkshop = "workshop"
	CategoryTalkshow = "talkshow"
	CategoryWebinar  = "webinar"
)

// Categories lists the category options in display order.
var Categories = []string{CategorySeminar, CategoryWorkshop, CategoryTalkshow, CategoryWebinar}

// Acara represents an event record as read back from the store.
// Tanggal is nil when the stored value is not a native timestamp.
// swagger:model Acara
type Acara struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Pembicara        string     `json:"pembicara"`
	JabatanPembicara string     `json:"jabatan_pembicara"`
	Category         string     `json:"category"`
	Tanggal          *time.Time `json:"tanggal"`
	Tempat           string     `json:"tempat"`
	Slot             string     `json:"slot"`
	IsFree           bool       `json:"is_free"`
	Harga            string     `json:"harga"`
	Description      string     `json:"description"`
	ThumbnailURL     string     `json:"thumbnailUrl"`
	IsPublic         bool       `json:"is_public"`
	IsComplete       bool       `json:"is_complete"`
	UserID           string     `json:"userId"`
}

// AcaraDocument is the body written to the store when an event is created.
// Keys match the stored field names.
type AcaraDocument struct {
	Name             string    `json:"name" bson:"name"`
	Pembicara        string    `json:"pembicara" bson:"pembicara"`
	JabatanPembicara string    `json:"jabatan_pembicara" bson:"jabatan_pembicara"`
	Category         string    `json:"category" bson:"category"`
	Tanggal          time.Time `json:"tanggal" bson:"tanggal"`
	Tempat           string    `json:"tempat" bson:"tempat"`
	Slot             string    `json:"slot" bson:"slot"`
	IsFree           bool      `json:"is_free" bson:"is_free"`
	Harga            string    `json:"harga" bson:"harga"`
	Description      string    `json:"description" bson:"description"`
	ThumbnailURL     string    `json:"thumbnailUrl" bson:"thumbnailUrl"`
	IsPublic         bool      `json:"is_public" bson:"is_public"`
	IsComplete       bool      `json:"is_complete" bson:"is_complete"`
	UserID           string    `json:"userId" bson:"userId"`
}

// NewAcaraDocument builds the document persisted for a validated submission.
// The raw image is dropped, harga is forced to "0" for free events and the
// publication flags start out false.
func NewAcaraDocument(v *ValidatedAcara, thumbnailURL, userID string) *AcaraDocument {
	harga := v.Harga
	if v.IsFree {
		harga = "0"
	}
	return &AcaraDocument{
		Name:             v.Name,
		Pembicara:        v.Pembicara,
		JabatanPembicara: v.JabatanPembicara,
		Category:         v.Category,
		Tanggal:          v.Tanggal,
		Tempat:           v.Tempat,
		Slot:             v.Slot,
		IsFree:           v.IsFree,
		Harga:            harga,
		Description:      v.Description,
		ThumbnailURL:     thumbnailURL,
		IsPublic:         false,
		IsComplete:       false,
		UserID:           userID,
	}
}

// ToAcara returns the record view of a freshly written document.
func (d *AcaraDocument) ToAcara(id string) *Acara {
	tanggal := d.Tanggal
	return &Acara{
		ID:               id,
		Name:             d.Name,
		Pembicara:        d.Pembicara,
		JabatanPembicara: d.JabatanPembicara,
		Category:         d.Category,
		Tanggal:          &tanggal,
		Tempat:           d.Tempat,
		Slot:             d.Slot,
		IsFree:           d.IsFree,
		Harga:            d.Harga,
		Description:      d.Description,
		ThumbnailURL:     d.ThumbnailURL,
		IsPublic:         d.IsPublic,
		IsComplete:       d.IsComplete,
		UserID:           d.UserID,
	}
}

// RawDocument is a stored document before normalization.
// Fields holds the values exactly as the store decoded them.
type RawDocument struct {
	ID     string
	Fields map[string]any
}

// Timestamp is implemented by store-native timestamp values (BSON datetimes,
// timestamp columns). Any other representation of tanggal is treated as absent.
type Timestamp interface {
	Time() time.Time
}

// SortOption orders a listing by a stored field.
type SortOption struct {
	Field      string
	Descending bool
}

// ListOptions narrows an owner listing. The zero value means no limit and
// store order.
type ListOptions struct {
	Pagination *PaginationParams
	Sort       *SortOption
}

// CreateAcaraResult is returned by a successful creation.
// swagger:model CreateAcaraResult
type CreateAcaraResult struct {
	Acara    *Acara          `json:"acara"`
	State    SubmissionState `json:"state"`
	Message  string          `json:"message"`
	Redirect string          `json:"redirect"`
}

// AcaraStore defines the document storage used by the acara flows.
type AcaraStore interface {
	// Insert writes a new document and returns the store-assigned ID.
	Insert(ctx context.Context, doc *AcaraDocument) (string, error)
	// ListByOwner returns every document whose userId equals userID.
	ListByOwner(ctx context.Context, userID string, opts ListOptions) ([]RawDocument, error)
	// CountByOwner returns the number of documents whose userId equals userID.
	CountByOwner(ctx context.Context, userID string) (int, error)
}

// AcaraValidator checks a create form and returns either the validated values
// or one message per invalid field.
type AcaraValidator interface {
	Validate(form *AcaraForm) (*ValidatedAcara, FieldErrors)
}

// AcaraService defines the business logic for creating and listing events.
type AcaraService interface {
	CreateAcara(ctx context.Context, identity Identity, form *AcaraForm) (*CreateAcaraResult, error)
	ListAcara(ctx context.Context, userID string, opts ListOptions) ([]*Acara, error)
	CountAcara(ctx context.Context, userID string) (int, error)
	// SubmissionState reports whether a create submission of userID is running.
	SubmissionState(ctx context.Context, userID string) (SubmissionState, error)
}

// Outcome texts of the create flow.
const (
	AcaraCreatedMessage = "Berhasil membuat acara!"
	AcaraListPath       = "/dashboard/acara"
)
