package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ipe/internal/delivery/http/helpers"
	"ipe/internal/delivery/http/middleware"
	"ipe/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() *domain.Entry {
	return &domain.Entry{
		ID:            testEntryID,
		ResearcherID:  "user-1",
		Researcher:    "Ana Souza",
		Title:         "Sono e memória",
		Area:          domain.AreaHealth,
		Finding:       "Dormir consolida memória.",
		EvidenceLevel: domain.EvidenceInitial,
		SourceLink:    "https://doi.org/10.1/example",
		PublishedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestEntryController_Submit(t *testing.T) {
	validBody := `{"invite_code":"IPE2026","title":"Sono","area":"Saúde","finding":"x","evidence_level":"Alta","source_link":"https://doi.org/10.1/example"}`

	tests := []struct {
		name          string
		contextUserID string
		body          string
		serviceErr    error
		wantStatus    int
		wantCode      string
	}{
		{name: "created", contextUserID: "user-1", body: validBody, wantStatus: http.StatusCreated},
		{name: "no user in context", body: validBody, wantStatus: http.StatusUnauthorized, wantCode: helpers.ErrCodeUnauthorized},
		{name: "invalid invite code", contextUserID: "user-1", body: validBody, serviceErr: domain.ErrInvalidInviteCode, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeInvalidInviteCode},
		{
			name:          "missing source link",
			contextUserID: "user-1",
			body:          validBody,
			serviceErr:    fmt.Errorf("%w: source_link is required", domain.ErrMissingRequiredField),
			wantStatus:    http.StatusBadRequest,
			wantCode:      helpers.ErrCodeMissingRequiredField,
		},
		{name: "malformed json", contextUserID: "user-1", body: `{`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{name: "unknown field", contextUserID: "user-1", body: `{"invite_code":"x","votes":3}`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{
			name:          "title too long",
			contextUserID: "user-1",
			body:          validBody,
			serviceErr:    fmt.Errorf("%w: title must be at most %d characters", domain.ErrInvalidInput, domain.MaxTitleLen),
			wantStatus:    http.StatusBadRequest,
			wantCode:      helpers.ErrCodeBadRequest,
		},
		{name: "service error", contextUserID: "user-1", body: validBody, serviceErr: assert.AnError, wantStatus: http.StatusInternalServerError, wantCode: helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEntryService{submitEntry: sampleEntry(), err: tt.serviceErr}
			ctrl := NewEntryController(testLogger, fake)

			req := httptest.NewRequest(http.MethodPost, "http://test/entries", strings.NewReader(tt.body))
			if tt.contextUserID != "" {
				req = req.WithContext(middleware.SetUserID(req.Context(), tt.contextUserID))
			}
			rr := httptest.NewRecorder()

			ctrl.Submit(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var got domain.Entry
			envelope := decodeEnvelope(t, rr, &got)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
			assert.Equal(t, testEntryID, got.ID)
			assert.Equal(t, "IPE2026", fake.lastInviteCode)
			assert.Equal(t, "user-1", fake.lastUserID)
			assert.Equal(t, "Alta", fake.lastInput.EvidenceLevel, "normalisation is left to the service")
		})
	}
}

func TestEntryController_Submit_inviteCheckedBeforeLengths(t *testing.T) {
	fake := &fakeEntryService{err: domain.ErrInvalidInviteCode}
	ctrl := NewEntryController(testLogger, fake)

	body := fmt.Sprintf(`{"invite_code":"wrong","title":%q,"source_link":"https://doi.org/10.1/example"}`,
		strings.Repeat("é", domain.MaxTitleLen+1))
	req := httptest.NewRequest(http.MethodPost, "http://test/entries", strings.NewReader(body))
	req = req.WithContext(middleware.SetUserID(req.Context(), "user-1"))
	rr := httptest.NewRecorder()

	ctrl.Submit(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	envelope := decodeEnvelope(t, rr, nil)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeInvalidInviteCode, envelope.Error.Code)
	assert.Equal(t, "wrong", fake.lastInviteCode, "request must reach the service")
}

func TestEntryController_List(t *testing.T) {
	fake := &fakeEntryService{entries: []*domain.Entry{sampleEntry()}, total: 41}
	ctrl := NewEntryController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "http://test/entries?area=Sa%C3%BAde&q=sono&page=2&page_size=20", nil)
	rr := httptest.NewRecorder()
	ctrl.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var page helpers.Page[*domain.Entry]
	envelope := decodeEnvelope(t, rr, &page)
	require.Nil(t, envelope.Error)
	require.Len(t, page.Items, 1)
	assert.Equal(t, helpers.PaginationMeta{Page: 2, PageSize: 20, Total: 41, TotalPages: 3}, page.Pagination)
	assert.Equal(t, domain.EntryFilter{Area: domain.AreaHealth, Query: "sono"}, fake.lastFilter)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 20}, fake.lastParams)
}

func TestEntryController_Get(t *testing.T) {
	tests := []struct {
		name       string
		entryID    string
		viewerID   string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{name: "anonymous", entryID: testEntryID, wantStatus: http.StatusOK},
		{name: "with viewer", entryID: testEntryID, viewerID: "user-2", wantStatus: http.StatusOK},
		{name: "invalid id", entryID: "not-a-uuid", wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "not found", entryID: testEntryID, serviceErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEntryService{detail: &domain.EntryDetail{Entry: sampleEntry(), Liked: tt.viewerID != ""}, err: tt.serviceErr}
			ctrl := NewEntryController(testLogger, fake)

			req := httptest.NewRequest(http.MethodGet, "http://test/entries/"+tt.entryID, nil)
			req.SetPathValue("entryID", tt.entryID)
			if tt.viewerID != "" {
				req = req.WithContext(middleware.SetUserID(req.Context(), tt.viewerID))
			}
			rr := httptest.NewRecorder()
			ctrl.Get(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var detail domain.EntryDetail
			envelope := decodeEnvelope(t, rr, &detail)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			assert.Equal(t, tt.viewerID, fake.lastUserID)
			assert.Equal(t, tt.viewerID != "", detail.Liked)
			require.NotNil(t, detail.Entry)
			assert.Equal(t, testEntryID, detail.Entry.ID)
		})
	}
}

func TestEntryController_UpdateAndDelete(t *testing.T) {
	body := `{"title":"Novo","area":"Exatas","source_link":"10.1/x"}`

	tests := []struct {
		name          string
		method        string
		contextUserID string
		serviceErr    error
		wantStatus    int
		wantCode      string
	}{
		{name: "update ok", method: http.MethodPut, contextUserID: "user-1", wantStatus: http.StatusOK},
		{name: "update by other user", method: http.MethodPut, contextUserID: "user-2", serviceErr: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden},
		{name: "update unauthenticated", method: http.MethodPut, wantStatus: http.StatusUnauthorized, wantCode: helpers.ErrCodeUnauthorized},
		{name: "delete ok", method: http.MethodDelete, contextUserID: "user-1", wantStatus: http.StatusNoContent},
		{name: "delete missing", method: http.MethodDelete, contextUserID: "user-1", serviceErr: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: helpers.ErrCodeNotFound},
		{name: "delete by other user", method: http.MethodDelete, contextUserID: "user-2", serviceErr: domain.ErrForbidden, wantStatus: http.StatusForbidden, wantCode: helpers.ErrCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEntryService{submitEntry: sampleEntry(), err: tt.serviceErr}
			ctrl := NewEntryController(testLogger, fake)

			req := httptest.NewRequest(tt.method, "http://test/entries/"+testEntryID, strings.NewReader(body))
			req.SetPathValue("entryID", testEntryID)
			if tt.contextUserID != "" {
				req = req.WithContext(middleware.SetUserID(req.Context(), tt.contextUserID))
			}
			rr := httptest.NewRecorder()
			if tt.method == http.MethodPut {
				ctrl.Update(rr, req)
			} else {
				ctrl.Delete(rr, req)
			}

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
				assert.Equal(t, testEntryID, fake.lastEntryID)
				return
			}
			envelope := decodeEnvelope(t, rr, nil)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			assert.Equal(t, "Novo", fake.lastInput.Title)
			assert.Equal(t, tt.contextUserID, fake.lastUserID)
		})
	}
}

func TestEntryController_ListMine(t *testing.T) {
	fake := &fakeEntryService{entries: []*domain.Entry{sampleEntry()}}
	ctrl := NewEntryController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "http://test/entries/mine", nil)
	rr := httptest.NewRecorder()
	ctrl.ListMine(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	req = req.WithContext(middleware.SetUserID(req.Context(), "user-1"))
	rr = httptest.NewRecorder()
	ctrl.ListMine(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var entries []*domain.Entry
	decodeEnvelope(t, rr, &entries)
	assert.Len(t, entries, 1)
	assert.Equal(t, "user-1", fake.lastUserID)
}

func TestEntryController_ListByResearcher(t *testing.T) {
	fake := &fakeEntryService{entries: []*domain.Entry{sampleEntry()}}
	ctrl := NewEntryController(testLogger, fake)

	req := httptest.NewRequest(http.MethodGet, "http://test/researchers/Ana%20Souza/entries", nil)
	req.SetPathValue("name", "Ana Souza")
	rr := httptest.NewRecorder()
	ctrl.ListByResearcher(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Ana Souza", fake.lastName)

	fake.err = fmt.Errorf("%w: researcher name is required", domain.ErrInvalidInput)
	rr = httptest.NewRecorder()
	ctrl.ListByResearcher(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	envelope := decodeEnvelope(t, rr, nil)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
}
