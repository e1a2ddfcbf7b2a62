package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"ipe/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

const testTimeout = 5 * time.Second

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
	nextID    int
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

// fakeEntryRepo implements domain.EntryRepository in memory.
type fakeEntryRepo struct {
	entries   map[string]*domain.Entry
	order     []string
	createErr error
	nextID    int
	lastList  domain.EntryFilter
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: make(map[string]*domain.Entry)}
}

func (f *fakeEntryRepo) Create(ctx context.Context, e *domain.Entry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	e.ID = fmt.Sprintf("entry-%d", f.nextID)
	cp := *e
	f.entries[e.ID] = &cp
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeEntryRepo) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEntryRepo) IncrementViews(ctx context.Context, id string) error {
	e, ok := f.entries[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Views++
	return nil
}

func (f *fakeEntryRepo) all() []*domain.Entry {
	out := make([]*domain.Entry, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		if e, ok := f.entries[f.order[i]]; ok {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}

func (f *fakeEntryRepo) List(ctx context.Context, filter domain.EntryFilter, params domain.PaginationParams) ([]*domain.Entry, int, error) {
	f.lastList = filter
	var matched []*domain.Entry
	for _, e := range f.all() {
		if filter.Area != "" && e.Area != filter.Area {
			continue
		}
		matched = append(matched, e)
	}
	total := len(matched)
	start := min(params.Offset(), total)
	end := total
	if params.PageSize > 0 {
		end = min(start+params.PageSize, total)
	}
	return matched[start:end], total, nil
}

func (f *fakeEntryRepo) ListByResearcherID(ctx context.Context, researcherID string) ([]*domain.Entry, error) {
	out := make([]*domain.Entry, 0)
	for _, e := range f.all() {
		if e.ResearcherID == researcherID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByResearcherName(ctx context.Context, name string) ([]*domain.Entry, error) {
	out := make([]*domain.Entry, 0)
	for _, e := range f.all() {
		if e.Researcher == name {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) Update(ctx context.Context, e *domain.Entry) error {
	stored, ok := f.entries[e.ID]
	if !ok || stored.ResearcherID != e.ResearcherID {
		return domain.ErrNotFound
	}
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeEntryRepo) Delete(ctx context.Context, id, researcherID string) error {
	stored, ok := f.entries[id]
	if !ok || stored.ResearcherID != researcherID {
		return domain.ErrNotFound
	}
	delete(f.entries, id)
	return nil
}

// fakeReactionRepo implements domain.ReactionRepository in memory.
type fakeReactionRepo struct {
	set       map[string]bool
	existsErr error
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{set: make(map[string]bool)}
}

func reactionKey(kind domain.ReactionKind, entryID, userID string) string {
	return string(kind) + "|" + entryID + "|" + userID
}

func (f *fakeReactionRepo) Exists(ctx context.Context, kind domain.ReactionKind, entryID, userID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.set[reactionKey(kind, entryID, userID)], nil
}

func (f *fakeReactionRepo) Add(ctx context.Context, kind domain.ReactionKind, entryID, userID string) error {
	f.set[reactionKey(kind, entryID, userID)] = true
	return nil
}

func (f *fakeReactionRepo) Remove(ctx context.Context, kind domain.ReactionKind, entryID, userID string) error {
	delete(f.set, reactionKey(kind, entryID, userID))
	return nil
}

func (f *fakeReactionRepo) keys() []string {
	out := make([]string, 0, len(f.set))
	for k := range f.set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	saltErr error
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) {
	if f.saltErr != nil {
		return "", f.saltErr
	}
	return "salt", nil
}

func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}

func (f *fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

// fakeEmailService records welcome messages.
type fakeEmailService struct {
	sent []*domain.WelcomeMessageEmailData
	err  error
}

func (f *fakeEmailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
