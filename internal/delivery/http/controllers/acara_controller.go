package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"acaradashboard/internal/delivery/http/helpers"
	"acaradashboard/internal/delivery/http/middleware"
	"acaradashboard/internal/delivery/http/table"
	"acaradashboard/internal/domain"
	"acaradashboard/internal/validation"
)

const (
	// maxFormMemory is kept in memory while parsing; larger files spill to disk.
	maxFormMemory = 8 << 20
	// DefaultMaxRequestBytes caps a create request. It is above the poster limit
	// so that oversized posters are reported by the schema.
	DefaultMaxRequestBytes = 16 << 20
)

// CreateAcaraSuccessResponse is the success response envelope for POST /acara (201).
type CreateAcaraSuccessResponse struct {
	Data  *domain.CreateAcaraResult `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// CreateAcaraFailure is the data of a rejected POST /acara: conflict answers
// carry "submitting" and server failures carry "failed".
type CreateAcaraFailure struct {
	State domain.SubmissionState `json:"state"`
}

// ListAcaraResponse is the response body for GET /acara. Pagination is set only
// when page or page_size was requested.
type ListAcaraResponse struct {
	Items      []*domain.Acara         `json:"items"`
	Pagination *helpers.PaginationMeta `json:"pagination,omitempty"`
}

// ListAcaraSuccessResponse is the success response envelope for GET /acara (200).
type ListAcaraSuccessResponse struct {
	Data  ListAcaraResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AcaraTableResponse is the response body for GET /dashboard/acara.
type AcaraTableResponse struct {
	table.View
	Pagination *helpers.PaginationMeta `json:"pagination,omitempty"`
}

// AcaraTableSuccessResponse is the success response envelope for GET /dashboard/acara (200).
type AcaraTableSuccessResponse struct {
	Data  AcaraTableResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// AcaraFormSuccessResponse is the success response envelope for GET /dashboard/acara/{acaraId} (200).
type AcaraFormSuccessResponse struct {
	Data  FormView          `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type AcaraController struct {
	Logger          *slog.Logger
	Service         domain.AcaraService
	MaxRequestBytes int64
	Now             func() time.Time
}

func NewAcaraController(logger *slog.Logger, svc domain.AcaraService) *AcaraController {
	return &AcaraController{
		Logger:          logger,
		Service:         svc,
		MaxRequestBytes: DefaultMaxRequestBytes,
		Now:             time.Now,
	}
}

// CreateAcara godoc
// @Summary Create an event
// @Description Validates the form, uploads the poster to thumbnail_acara, and stores the event owned by the caller with is_public and is_complete false. Only one submission per owner runs at a time.
// @Tags acara
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Poster (jpeg, jpg, png or webp, at most 5MB)"
// @Param name formData string true "Nama acara (min 2)"
// @Param pembicara formData string true "Nama pembicara (min 2)"
// @Param jabatan_pembicara formData string true "Jabatan pembicara (min 2)"
// @Param category formData string true "seminar, workshop, talkshow or webinar"
// @Param tanggal formData string true "Date (RFC3339, 2006-01-02T15:04 or 2006-01-02)"
// @Param tempat formData string true "Tempat (min 2)"
// @Param slot formData string true "Total tiket"
// @Param is_free formData boolean false "Defaults to true"
// @Param harga formData string true "Harga tiket; forced to 0 when is_free"
// @Param description formData string true "Deskripsi (min 10)"
// @Success 201 {object} controllers.CreateAcaraSuccessResponse "data contains the created event, message and redirect"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed (error.fields) or bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse{data=controllers.CreateAcaraFailure} "error.code: conflict, data.state: submitting"
// @Failure 500 {object} helpers.APIResponse{data=controllers.CreateAcaraFailure} "error.code: internal_error, data.state: failed"
// @Router /acara [post]
func (c *AcaraController) CreateAcara(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	limit := c.MaxRequestBytes
	if limit <= 0 {
		limit = DefaultMaxRequestBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			helpers.WriteJSONValidationError(w, domain.FieldErrors{"image": validation.ImageTooLargeMessage})
			return
		}
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid multipart form")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	form, closeFiles, err := bindAcaraForm(r.MultipartForm)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "could not read image")
		return
	}
	defer closeFiles()

	res, err := c.Service.CreateAcara(r.Context(), identity, form)
	if err != nil {
		c.writeCreateError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, res)
}

func (c *AcaraController) writeCreateError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	var opErr *domain.OperationError
	switch {
	case errors.As(err, &vErr):
		helpers.WriteJSONValidationError(w, vErr.Fields)
	case errors.Is(err, domain.ErrSubmissionInProgress):
		helpers.WriteJSONErrorWithData(w, http.StatusConflict, helpers.ErrCodeConflict, "a submission is already in progress",
			CreateAcaraFailure{State: domain.SubmissionSubmitting})
	case errors.Is(err, domain.ErrUnauthorized):
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
	case errors.As(err, &opErr):
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "op", opErr.Op, "err", err)
		helpers.WriteJSONErrorWithData(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, opErr.Message(),
			CreateAcaraFailure{State: domain.SubmissionFailed})
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONErrorWithData(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, domain.GenericFailureMessage,
			CreateAcaraFailure{State: domain.SubmissionFailed})
	}
}

// listForCaller runs the owner listing shared by the JSON and table views. It
// writes the error response itself and returns ok=false on failure.
func (c *AcaraController) listForCaller(w http.ResponseWriter, r *http.Request) ([]*domain.Acara, *helpers.PaginationMeta, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, nil, false
	}
	opts, err := helpers.ParseListOptions(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return nil, nil, false
	}
	items, err := c.Service.ListAcara(r.Context(), userID, opts)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, domain.GenericFailureMessage)
		return nil, nil, false
	}
	if items == nil {
		items = []*domain.Acara{}
	}
	if opts.Pagination == nil {
		return items, nil, true
	}
	total, err := c.Service.CountAcara(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, domain.GenericFailureMessage)
		return nil, nil, false
	}
	meta := helpers.NewPaginationMeta(opts.Pagination.Page, opts.Pagination.PageSize, total)
	return items, &meta, true
}

// ListAcara godoc
// @Summary List my events
// @Description Returns every event owned by the caller. tanggal is null unless stored as a timestamp. Without page, page_size or sort the list is unbounded and in store order.
// @Tags acara
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Param sort query string false "tanggal, -tanggal, name or -name"
// @Success 200 {object} controllers.ListAcaraSuccessResponse "data.items contains the events"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /acara [get]
func (c *AcaraController) ListAcara(w http.ResponseWriter, r *http.Request) {
	items, meta, ok := c.listForCaller(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListAcaraResponse{Items: items, Pagination: meta})
}

// DashboardAcara godoc
// @Summary Event listing table
// @Description Returns the caller's events rendered through the listing columns (image, name, category, price, description, status, actions).
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Param sort query string false "tanggal, -tanggal, name or -name"
// @Success 200 {object} controllers.AcaraTableSuccessResponse "data contains columns and rows"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dashboard/acara [get]
func (c *AcaraController) DashboardAcara(w http.ResponseWriter, r *http.Request) {
	items, meta, ok := c.listForCaller(w, r)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AcaraTableResponse{View: table.Render(items), Pagination: meta})
}

// AcaraForm godoc
// @Summary Event form
// @Description Returns the create form for any acaraId; editing existing events is not supported. submitDisabled is true while a submission of the caller is running.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param acaraId path string true "Event ID or new"
// @Success 200 {object} controllers.AcaraFormSuccessResponse "data contains the form view"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /dashboard/acara/{acaraId} [get]
func (c *AcaraController) AcaraForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	state, err := c.Service.SubmissionState(r.Context(), userID)
	if err != nil {
		// The form stays usable; a duplicate submit is still rejected with 409.
		c.Logger.WarnContext(r.Context(), "submission state unavailable", "path", r.URL.Path, "err", err)
		state = domain.SubmissionIdle
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewCreateFormView(r.PathValue("acaraId"), now(), state))
}
