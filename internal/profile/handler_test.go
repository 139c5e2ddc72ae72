package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	byAnonID map[string]*Profile
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byAnonID: make(map[string]*Profile)}
}

func (r *memoryRepo) GetByAnonymousID(_ context.Context, anonymousID string) (*Profile, error) {
	p, ok := r.byAnonID[anonymousID]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

func (r *memoryRepo) Save(_ context.Context, p *Profile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.byAnonID[p.AnonymousID] = p
	return nil
}

func newTestRouter(repo Repository) *chi.Mux {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(repo))
	return r
}

func TestSaveAndGetProfile(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(repo)

	body := `{"anonymous_id":"anon-1","name":"Test Patient","age":34,"user_persona":"Self"}`
	req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var saved map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.NotEmpty(t, saved["id"])

	req = httptest.NewRequest(http.MethodGet, "/profile?anonymous_id=anon-1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Test Patient", got.Name)
	assert.Equal(t, 34, got.Age)
}

func TestSaveProfile_UpsertKeepsID(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(repo)

	post := func(body string) string {
		req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp["id"]
	}

	first := post(`{"anonymous_id":"anon-2","age":30}`)
	second := post(`{"anonymous_id":"anon-2","age":31}`)
	assert.Equal(t, first, second, "resubmitting a profile must keep the same id")
}

func TestSaveProfile_MissingAnonymousID(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	req := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(`{"age":30}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfile_NotFound(t *testing.T) {
	router := newTestRouter(newMemoryRepo())

	req := httptest.NewRequest(http.MethodGet, "/profile?anonymous_id=missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
