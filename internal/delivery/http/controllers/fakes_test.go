package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"ipe/internal/delivery/http/helpers"
	"ipe/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const testEntryID = "6f1c2a3b-4d5e-4f60-8a7b-9c0d1e2f3a4b"

// decodeEnvelope decodes the response envelope and, when out is non-nil, its data.
func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, out any) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	if out != nil && envelope.Data != nil {
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(dataBytes, out))
	}
	return envelope
}

// fakeEntryService implements domain.EntryService for handler tests.
type fakeEntryService struct {
	submitEntry *domain.Entry
	entries     []*domain.Entry
	total       int
	detail      *domain.EntryDetail
	err         error

	lastInviteCode string
	lastUserID     string
	lastEntryID    string
	lastInput      domain.EntryInput
	lastFilter     domain.EntryFilter
	lastParams     domain.PaginationParams
	lastName       string
}

func (f *fakeEntryService) Submit(ctx context.Context, inviteCode, researcherID string, in domain.EntryInput) (*domain.Entry, error) {
	f.lastInviteCode, f.lastUserID, f.lastInput = inviteCode, researcherID, in
	if f.err != nil {
		return nil, f.err
	}
	return f.submitEntry, nil
}

func (f *fakeEntryService) List(ctx context.Context, filter domain.EntryFilter, params domain.PaginationParams) ([]*domain.Entry, int, error) {
	f.lastFilter, f.lastParams = filter, params
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.entries, f.total, nil
}

func (f *fakeEntryService) Get(ctx context.Context, id, viewerID string) (*domain.EntryDetail, error) {
	f.lastEntryID, f.lastUserID = id, viewerID
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeEntryService) Update(ctx context.Context, id, ownerID string, in domain.EntryInput) (*domain.Entry, error) {
	f.lastEntryID, f.lastUserID, f.lastInput = id, ownerID, in
	if f.err != nil {
		return nil, f.err
	}
	return f.submitEntry, nil
}

func (f *fakeEntryService) Delete(ctx context.Context, id, ownerID string) error {
	f.lastEntryID, f.lastUserID = id, ownerID
	return f.err
}

func (f *fakeEntryService) ListMine(ctx context.Context, ownerID string) ([]*domain.Entry, error) {
	f.lastUserID = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func (f *fakeEntryService) ListByResearcher(ctx context.Context, name string) ([]*domain.Entry, error) {
	f.lastName = name
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

// fakeReactionService implements domain.ReactionService.
type fakeReactionService struct {
	active   bool
	err      error
	lastKind domain.ReactionKind
	lastUser string
}

func (f *fakeReactionService) Toggle(ctx context.Context, kind domain.ReactionKind, entryID, userID string) (bool, error) {
	f.lastKind, f.lastUser = kind, userID
	return f.active, f.err
}

// fakeUserService implements domain.UserService.
type fakeUserService struct {
	user         *domain.User
	token        string
	err          error
	lastRegister domain.RegisterInput
}

func (f *fakeUserService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	f.lastRegister = in
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeGate struct{ signUp bool }

func (g fakeGate) Verify(code string) error { return nil }

func (g fakeGate) RequiredForSignUp() bool { return g.signUp }

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }
