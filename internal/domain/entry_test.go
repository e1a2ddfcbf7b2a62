package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSourceLink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"bare doi", "10.1000/xyz123", "https://doi.org/10.1000/xyz123"},
		{"doi.org without scheme", "doi.org/10.1/abc", "https://doi.org/10.1/abc"},
		{"doi.org uppercase", "DOI.org/10.1/abc", "https://DOI.org/10.1/abc"},
		{"https kept", "https://doi.org/10.1/example", "https://doi.org/10.1/example"},
		{"http kept", "http://example.com/paper", "http://example.com/paper"},
		{"host only", "example.com/paper.pdf", "https://example.com/paper.pdf"},
		{"trimmed", "  https://x.org  ", "https://x.org"},
		{"10. without slash is not a doi", "10.5", "https://10.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSourceLink(tt.in))
		})
	}
}

func TestNormalizeArea(t *testing.T) {
	assert.Equal(t, AreaHealth, NormalizeArea(" Saúde "))
	assert.Equal(t, AreaHumanities, NormalizeArea("Astrologia"))
	assert.Equal(t, AreaHumanities, NormalizeArea(""))
}

func TestNormalizeEvidenceLevel(t *testing.T) {
	assert.Equal(t, EvidenceStrong, NormalizeEvidenceLevel("Forte"))
	assert.Equal(t, EvidenceInitial, NormalizeEvidenceLevel("Alta"))
	assert.Equal(t, EvidenceInitial, NormalizeEvidenceLevel(""))
}

func TestEntryInput_Normalize(t *testing.T) {
	in := EntryInput{
		Title:         "  Título ",
		Area:          "Exatas",
		Finding:       " achado ",
		EvidenceLevel: "Moderada",
		SourceLink:    "10.1/x",
		ImageURL:      " https://img.example/a.png ",
	}
	got := in.Normalize()
	assert.Equal(t, "Título", got.Title)
	assert.Equal(t, AreaExact, got.Area)
	assert.Equal(t, "achado", got.Finding)
	assert.Equal(t, EvidenceModerate, got.EvidenceLevel)
	assert.Equal(t, "https://doi.org/10.1/x", got.SourceLink)
	assert.Equal(t, "https://img.example/a.png", got.ImageURL)
}

func TestEntryInput_CheckLengths(t *testing.T) {
	tests := []struct {
		name      string
		in        EntryInput
		wantField string
	}{
		{name: "empty", in: EntryInput{}},
		{name: "multibyte title at limit", in: EntryInput{Title: strings.Repeat("ê", MaxTitleLen)}},
		{name: "title over limit", in: EntryInput{Title: strings.Repeat("a", MaxTitleLen+1)}, wantField: "title"},
		{name: "finding over limit", in: EntryInput{Finding: strings.Repeat("a", MaxTextLen+1)}, wantField: "finding"},
		{name: "source link over limit", in: EntryInput{SourceLink: strings.Repeat("a", MaxLinkLen+1)}, wantField: "source_link"},
		{name: "image url over limit", in: EntryInput{ImageURL: strings.Repeat("a", MaxLinkLen+1)}, wantField: "image_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.CheckLengths()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 0, PageSize: 20}.Offset())
	assert.Equal(t, 0, PaginationParams{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, PaginationParams{Page: 3, PageSize: 20}.Offset())
}
