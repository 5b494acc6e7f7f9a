package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"acaradashboard/internal/currency"
	"acaradashboard/internal/domain"
)

type acaraService struct {
	store          domain.AcaraStore
	validator      domain.AcaraValidator
	uploader       domain.ImageUploader
	guard          domain.SubmissionGuard
	emailService   domain.EmailService
	logger         *slog.Logger
	dashboardURL   string
	contextTimeout time.Duration
}

// NewAcaraService returns the create and list flows for event records.
// emailService may be nil; dashboardURL is linked from notifications.
func NewAcaraService(
	store domain.AcaraStore,
	validator domain.AcaraValidator,
	uploader domain.ImageUploader,
	guard domain.SubmissionGuard,
	emailService domain.EmailService,
	logger *slog.Logger,
	dashboardURL string,
	timeout time.Duration,
) domain.AcaraService {
	if logger == nil {
		logger = slog.Default()
	}
	return &acaraService{
		store:          store,
		validator:      validator,
		uploader:       uploader,
		guard:          guard,
		emailService:   emailService,
		logger:         logger,
		dashboardURL:   dashboardURL,
		contextTimeout: timeout,
	}
}

// withTimeout applies d to ctx; d <= 0 leaves ctx without a deadline.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func (s *acaraService) CreateAcara(ctx context.Context, identity domain.Identity, form *domain.AcaraForm) (*domain.CreateAcaraResult, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if identity.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	valid, fieldErrs := s.validator.Validate(form)
	if len(fieldErrs) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrs}
	}

	release, err := s.guard.Begin(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrSubmissionInProgress) {
			return nil, err
		}
		return nil, fmt.Errorf("begin submission: %w", err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.WarnContext(ctx, "release submission failed", "user_id", identity.UserID, "err", err)
		}
	}()

	thumbnailURL, err := s.uploader.Upload(ctx, valid.Image, domain.ThumbnailFolder)
	if err != nil {
		s.logger.ErrorContext(ctx, "upload poster failed", "user_id", identity.UserID, "file", valid.Image.Filename, "err", err)
		return nil, &domain.OperationError{Op: "upload poster", Err: err}
	}

	doc := domain.NewAcaraDocument(valid, thumbnailURL, identity.UserID)
	id, err := s.store.Insert(ctx, doc)
	if err != nil {
		s.logger.ErrorContext(ctx, "insert acara failed", "user_id", identity.UserID, "thumbnail_url", thumbnailURL, "err", err)
		return nil, &domain.OperationError{Op: "insert acara", Err: err}
	}

	acara := doc.ToAcara(id)
	s.logger.InfoContext(ctx, "acara created", "id", id, "user_id", identity.UserID)
	s.notifyCreated(ctx, identity, acara)

	return &domain.CreateAcaraResult{
		Acara:    acara,
		State:    domain.SubmissionSucceeded,
		Message:  domain.AcaraCreatedMessage,
		Redirect: domain.AcaraListPath,
	}, nil
}

// notifyCreated emails the owner about a new event. Failures are logged only.
func (s *acaraService) notifyCreated(ctx context.Context, identity domain.Identity, acara *domain.Acara) {
	if s.emailService == nil || identity.Email == "" {
		return
	}
	data := &domain.AcaraCreatedEmailData{
		Email:        identity.Email,
		AcaraName:    acara.Name,
		Tempat:       acara.Tempat,
		IsFree:       acara.IsFree,
		Harga:        currency.FormatPrice(acara.IsFree, acara.Harga),
		DashboardURL: s.dashboardURL + domain.AcaraListPath,
	}
	if acara.Tanggal != nil {
		data.Tanggal = *acara.Tanggal
	}
	if err := s.emailService.SendAcaraCreated(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "acara created email failed", "id", acara.ID, "err", err)
	}
}

func (s *acaraService) ListAcara(ctx context.Context, userID string, opts domain.ListOptions) ([]*domain.Acara, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	docs, err := s.store.ListByOwner(ctx, userID, opts)
	if err != nil {
		return nil, fmt.Errorf("list acara: %w", err)
	}
	out := make([]*domain.Acara, 0, len(docs))
	for _, doc := range docs {
		out = append(out, normalizeAcara(doc))
	}
	return out, nil
}

func (s *acaraService) CountAcara(ctx context.Context, userID string) (int, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return 0, domain.ErrUnauthorized
	}
	n, err := s.store.CountByOwner(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count acara: %w", err)
	}
	return n, nil
}

func (s *acaraService) SubmissionState(ctx context.Context, userID string) (domain.SubmissionState, error) {
	if userID == "" {
		return "", domain.ErrUnauthorized
	}
	state, err := s.guard.State(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("submission state: %w", err)
	}
	return state, nil
}

// normalizeAcara converts a stored document into a record. tanggal is kept
// only when it is a native timestamp; every other representation becomes nil.
func normalizeAcara(doc domain.RawDocument) *domain.Acara {
	f := doc.Fields
	return &domain.Acara{
		ID:               doc.ID,
		Name:             stringField(f, "name"),
		Pembicara:        stringField(f, "pembicara"),
		JabatanPembicara: stringField(f, "jabatan_pembicara"),
		Category:         stringField(f, "category"),
		Tanggal:          timestampField(f, "tanggal"),
		Tempat:           stringField(f, "tempat"),
		Slot:             stringField(f, "slot"),
		IsFree:           boolField(f, "is_free"),
		Harga:            stringField(f, "harga"),
		Description:      stringField(f, "description"),
		ThumbnailURL:     stringField(f, "thumbnailUrl"),
		IsPublic:         boolField(f, "is_public"),
		IsComplete:       boolField(f, "is_complete"),
		UserID:           stringField(f, "userId"),
	}
}

func timestampField(f map[string]any, key string) *time.Time {
	var t time.Time
	switch v := f[key].(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return nil
		}
		t = *v
	case domain.Timestamp:
		t = v.Time()
	default:
		return nil
	}
	t = t.UTC()
	return &t
}

func stringField(f map[string]any, key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func boolField(f map[string]any, key string) bool {
	v, _ := f[key].(bool)
	return v
}
