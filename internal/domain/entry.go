package domain

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Sentinel errors for entry submission and management.
var (
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidInviteCode    = errors.New("invalid invite code")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidInput         = errors.New("invalid input")
)

// Macro areas an entry can be filed under.
const (
	AreaHealth     = "Saúde"
	AreaTechnology = "Tecnologia"
	AreaHumanities = "Humanas"
	AreaExact      = "Exatas"
	AreaBiological = "Biológicas"
)

// Evidence-level badges, strongest first.
const (
	EvidenceStrong   = "Forte"
	EvidenceModerate = "Moderada"
	EvidenceInitial  = "Inicial"
)

// Areas lists the accepted areas in display order.
var Areas = []string{AreaHealth, AreaTechnology, AreaHumanities, AreaExact, AreaBiological}

// EvidenceLevels lists the accepted evidence badges in display order.
var EvidenceLevels = []string{EvidenceStrong, EvidenceModerate, EvidenceInitial}

// IsArea reports whether s is one of Areas.
func IsArea(s string) bool {
	return slices.Contains(Areas, s)
}

// NormalizeArea returns area unchanged when it is known and AreaHumanities otherwise.
func NormalizeArea(area string) string {
	area = strings.TrimSpace(area)
	if IsArea(area) {
		return area
	}
	return AreaHumanities
}

// NormalizeEvidenceLevel returns level unchanged when it is known and EvidenceInitial otherwise.
func NormalizeEvidenceLevel(level string) string {
	level = strings.TrimSpace(level)
	if slices.Contains(EvidenceLevels, level) {
		return level
	}
	return EvidenceInitial
}

// NormalizeSourceLink turns a raw link or DOI into an absolute URL.
// Bare DOIs ("10.xxxx/yyy") resolve through https://doi.org/. Empty input stays empty.
func NormalizeSourceLink(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(s, "10.") && strings.Contains(s, "/"):
		return "https://doi.org/" + s
	case strings.HasPrefix(lower, "doi.org/"):
		return "https://" + s
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return s
	}
	return "https://" + s
}

// Entry is a published research summary.
// swagger:model Entry
type Entry struct {
	ID            string     `json:"id"`
	ResearcherID  string     `json:"researcher_id"`
	Researcher    string     `json:"researcher"`
	Title         string     `json:"title"`
	Area          string     `json:"area"`
	Finding       string     `json:"finding"`
	Importance    string     `json:"importance"`
	Application   string     `json:"application"`
	Audience      string     `json:"audience"`
	EvidenceLevel string     `json:"evidence_level"`
	SourceLink    string     `json:"source_link"`
	ImageURL      string     `json:"image_url,omitempty"`
	PublishedAt   time.Time  `json:"published_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	Views         int        `json:"views"`
	LikesCount    int        `json:"likes_count"`
	SavesCount    int        `json:"saves_count"`
}

// EntryInput carries the user-editable fields of an entry.
type EntryInput struct {
	Title         string
	Area          string
	Finding       string
	Importance    string
	Application   string
	Audience      string
	EvidenceLevel string
	SourceLink    string
	ImageURL      string
}

// Normalize trims every field, coerces area and evidence level into their
// fixed sets and expands the source link.
func (in EntryInput) Normalize() EntryInput {
	return EntryInput{
		Title:         strings.TrimSpace(in.Title),
		Area:          NormalizeArea(in.Area),
		Finding:       strings.TrimSpace(in.Finding),
		Importance:    strings.TrimSpace(in.Importance),
		Application:   strings.TrimSpace(in.Application),
		Audience:      strings.TrimSpace(in.Audience),
		EvidenceLevel: NormalizeEvidenceLevel(in.EvidenceLevel),
		SourceLink:    NormalizeSourceLink(in.SourceLink),
		ImageURL:      strings.TrimSpace(in.ImageURL),
	}
}

// Field length limits, in characters.
const (
	MaxTitleLen = 300
	MaxTextLen  = 10000
	MaxLinkLen  = 2048
)

// CheckLengths returns ErrInvalidInput naming the first field over its limit.
func (in EntryInput) CheckLengths() error {
	fields := []struct {
		name  string
		value string
		limit int
	}{
		{"title", in.Title, MaxTitleLen},
		{"finding", in.Finding, MaxTextLen},
		{"importance", in.Importance, MaxTextLen},
		{"application", in.Application, MaxTextLen},
		{"audience", in.Audience, MaxTextLen},
		{"source_link", in.SourceLink, MaxLinkLen},
		{"image_url", in.ImageURL, MaxLinkLen},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.limit {
			return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, f.name, f.limit)
		}
	}
	return nil
}

// Apply copies the input fields onto e.
func (in EntryInput) Apply(e *Entry) {
	e.Title = in.Title
	e.Area = in.Area
	e.Finding = in.Finding
	e.Importance = in.Importance
	e.Application = in.Application
	e.Audience = in.Audience
	e.EvidenceLevel = in.EvidenceLevel
	e.SourceLink = in.SourceLink
	e.ImageURL = in.ImageURL
}

// NewEntry returns a new Entry authored by the given researcher. ID is set by the repository on create.
func NewEntry(researcherID, researcher string, in EntryInput, publishedAt time.Time) *Entry {
	e := &Entry{
		ResearcherID: researcherID,
		Researcher:   researcher,
		PublishedAt:  publishedAt,
	}
	in.Apply(e)
	return e
}

// EntryDetail is a single entry as seen by a (possibly anonymous) viewer.
// swagger:model EntryDetail
type EntryDetail struct {
	Entry *Entry `json:"entry"`
	Liked bool   `json:"liked"`
	Saved bool   `json:"saved"`
	Owner bool   `json:"owner"`
}

// EntryFilter narrows entry listings. Empty fields do not filter.
type EntryFilter struct {
	Area  string
	Query string
}

// EntryRepository defines storage operations for entries.
type EntryRepository interface {
	Create(ctx context.Context, e *Entry) error
	// GetByID returns the entry with like/save counts, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Entry, error)
	IncrementViews(ctx context.Context, id string) error
	// List returns one page of entries, newest first, and the total matching count.
	List(ctx context.Context, filter EntryFilter, params PaginationParams) ([]*Entry, int, error)
	ListByResearcherID(ctx context.Context, researcherID string) ([]*Entry, error)
	ListByResearcherName(ctx context.Context, name string) ([]*Entry, error)
	// Update and Delete only touch rows owned by e.ResearcherID; otherwise ErrNotFound.
	Update(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, id, researcherID string) error
}

// EntryService defines the submission and browsing operations.
type EntryService interface {
	// Submit checks the invite code, validates the input and stores a new entry for the researcher.
	Submit(ctx context.Context, inviteCode, researcherID string, in EntryInput) (*Entry, error)
	List(ctx context.Context, filter EntryFilter, params PaginationParams) ([]*Entry, int, error)
	// Get counts a view and returns the entry; viewerID may be empty.
	Get(ctx context.Context, id, viewerID string) (*EntryDetail, error)
	Update(ctx context.Context, id, ownerID string, in EntryInput) (*Entry, error)
	Delete(ctx context.Context, id, ownerID string) error
	ListMine(ctx context.Context, ownerID string) ([]*Entry, error)
	ListByResearcher(ctx context.Context, name string) ([]*Entry, error)
}

// InviteGate checks invite codes against the configured secret.
type InviteGate interface {
	// Verify returns ErrInvalidInviteCode when code does not match.
	Verify(code string) error
	// RequiredForSignUp reports whether registration must present the code too.
	RequiredForSignUp() bool
}
