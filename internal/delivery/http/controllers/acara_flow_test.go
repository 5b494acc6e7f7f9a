package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"acaradashboard/internal/adapters/submission"
	"acaradashboard/internal/delivery/http/middleware"
	"acaradashboard/internal/domain"
	"acaradashboard/internal/services"
	"acaradashboard/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryObject struct {
	key         string
	size        int64
	contentType string
	body        []byte
}

// memoryBlobStorage keeps uploaded objects in memory.
type memoryBlobStorage struct {
	mu      sync.Mutex
	objects []memoryObject
}

func (s *memoryBlobStorage) Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, memoryObject{key: key, size: size, contentType: contentType, body: b})
	return nil
}

func (s *memoryBlobStorage) URL(ctx context.Context, key string) (string, error) {
	return "https://cdn.test/" + key, nil
}

// memoryAcaraStore records inserted documents.
type memoryAcaraStore struct {
	mu   sync.Mutex
	docs []*domain.AcaraDocument
}

func (s *memoryAcaraStore) Insert(ctx context.Context, doc *domain.AcaraDocument) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, doc)
	return "acara-1", nil
}

func (s *memoryAcaraStore) ListByOwner(ctx context.Context, userID string, opts domain.ListOptions) ([]domain.RawDocument, error) {
	return nil, nil
}

func (s *memoryAcaraStore) CountByOwner(ctx context.Context, userID string) (int, error) {
	return len(s.docs), nil
}

type createStack struct {
	blobs      *memoryBlobStorage
	store      *memoryAcaraStore
	guard      domain.SubmissionGuard
	controller *AcaraController
}

// newCreateStack wires the real schema, uploader, service and memory guard
// behind the controller; only blob storage and the store are in memory.
func newCreateStack() *createStack {
	st := &createStack{
		blobs: &memoryBlobStorage{},
		store: &memoryAcaraStore{},
		guard: submission.NewMemoryGuard(time.Minute),
	}
	uploader := services.NewImageUploader(st.blobs, func() time.Time { return time.UnixMilli(1735689600000) })
	svc := services.NewAcaraService(st.store, validation.NewAcaraSchema(), uploader, st.guard, nil, testLogger, "https://dash.test", 0)
	st.controller = NewAcaraController(testLogger, svc)
	return st
}

func (st *createStack) post(t *testing.T, fields map[string]string, files ...multipartFile) *httptest.ResponseRecorder {
	t.Helper()
	req := newMultipartRequest(t, fields, files...)
	req = req.WithContext(middleware.SetIdentity(req.Context(), caller))
	rr := httptest.NewRecorder()
	st.controller.CreateAcara(rr, req)
	return rr
}

func TestCreateAcara_ThroughRealStack(t *testing.T) {
	st := newCreateStack()
	image := multipartFile{name: "poster.jpg", contentType: "image/jpeg", body: bytes.Repeat([]byte{0xff}, 2000000)}
	fields := validFields()
	fields["name"] = "Tech Talk 2025"
	fields["description"] = "Diskusi santai di Go"
	require.Len(t, fields["description"], 20)

	rr := st.post(t, fields, image)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	env, data := decodeEnvelope(t, rr)
	require.Nil(t, env.Error)
	var res domain.CreateAcaraResult
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, "Berhasil membuat acara!", res.Message)
	assert.Equal(t, "/dashboard/acara", res.Redirect)
	assert.Equal(t, domain.SubmissionSucceeded, res.State)

	require.Len(t, st.blobs.objects, 1, "exactly one upload")
	obj := st.blobs.objects[0]
	assert.True(t, strings.HasPrefix(obj.key, "thumbnail_acara/"), obj.key)
	assert.Equal(t, "thumbnail_acara/1735689600000_poster.jpg", obj.key)
	assert.Equal(t, int64(2000000), obj.size)
	assert.Len(t, obj.body, 2000000)
	assert.Equal(t, "image/jpeg", obj.contentType)

	require.Len(t, st.store.docs, 1, "exactly one write")
	doc := st.store.docs[0]
	assert.Equal(t, "Tech Talk 2025", doc.Name)
	assert.Equal(t, "Diskusi santai di Go", doc.Description)
	assert.False(t, doc.IsPublic)
	assert.False(t, doc.IsComplete)
	assert.Equal(t, "150000", doc.Harga)
	assert.Equal(t, "user-123", doc.UserID)
	assert.Equal(t, "https://cdn.test/"+obj.key, doc.ThumbnailURL)
	require.NotNil(t, res.Acara)
	assert.Equal(t, "acara-1", res.Acara.ID)
	assert.Equal(t, doc.ThumbnailURL, res.Acara.ThumbnailURL)

	state, err := st.guard.State(context.Background(), "user-123")
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionIdle, state, "guard released after success")
}

func TestCreateAcara_ThroughRealStack_InvalidName(t *testing.T) {
	st := newCreateStack()
	fields := validFields()
	fields["name"] = "T"

	rr := st.post(t, fields, poster)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	env, _ := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, map[string]string{"name": "Nama Acara must be at least 2 characters."}, env.Error.Fields)
	assert.Empty(t, st.blobs.objects, "no upload on invalid input")
	assert.Empty(t, st.store.docs, "no write on invalid input")
}
