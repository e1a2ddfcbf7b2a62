package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ipe/internal/domain"
)

const entryColumns = `
	e.id, e.researcher_id, e.researcher, e.title, e.area, e.finding, e.importance,
	e.application, e.audience, e.evidence_level, e.source_link, e.image_url,
	e.published_at, e.updated_at, e.views,
	(SELECT COUNT(*) FROM likes l WHERE l.entry_id = e.id) AS likes_count,
	(SELECT COUNT(*) FROM saves s WHERE s.entry_id = e.id) AS saves_count`

type entryRepository struct {
	DB *sql.DB
}

func NewEntryRepository(db *sql.DB) domain.EntryRepository {
	return &entryRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	e := &domain.Entry{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&e.ID, &e.ResearcherID, &e.Researcher, &e.Title, &e.Area, &e.Finding, &e.Importance,
		&e.Application, &e.Audience, &e.EvidenceLevel, &e.SourceLink, &e.ImageURL,
		&e.PublishedAt, &updatedAt, &e.Views, &e.LikesCount, &e.SavesCount,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		e.UpdatedAt = &updatedAt.Time
	}
	return e, nil
}

func (r *entryRepository) Create(ctx context.Context, e *domain.Entry) error {
	query := `
		INSERT INTO entries (researcher_id, researcher, title, area, finding, importance,
			application, audience, evidence_level, source_link, image_url, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.ResearcherID, e.Researcher, e.Title, e.Area, e.Finding, e.Importance,
		e.Application, e.Audience, e.EvidenceLevel, e.SourceLink, e.ImageURL, e.PublishedAt,
	).Scan(&e.ID)
}

func (r *entryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries e WHERE e.id = $1`
	e, err := scanEntry(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *entryRepository) IncrementViews(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE entries SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *entryRepository) List(ctx context.Context, filter domain.EntryFilter, params domain.PaginationParams) ([]*domain.Entry, int, error) {
	var conds []string
	var args []any
	if filter.Area != "" {
		args = append(args, filter.Area)
		conds = append(conds, fmt.Sprintf("e.area = $%d", len(args)))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(e.title ILIKE $%d OR e.finding ILIKE $%d OR e.researcher ILIKE $%d)", n, n, n))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries e`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageArgs := append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(`SELECT %s FROM entries e%s ORDER BY e.published_at DESC, e.id DESC LIMIT $%d OFFSET $%d`,
		entryColumns, where, len(args)+1, len(args)+2)
	entries, err := r.queryEntries(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *entryRepository) ListByResearcherID(ctx context.Context, researcherID string) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries e WHERE e.researcher_id = $1 ORDER BY e.published_at DESC, e.id DESC`
	return r.queryEntries(ctx, query, researcherID)
}

func (r *entryRepository) ListByResearcherName(ctx context.Context, name string) ([]*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries e WHERE e.researcher = $1 ORDER BY e.published_at DESC, e.id DESC`
	return r.queryEntries(ctx, query, name)
}

func (r *entryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]*domain.Entry, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *entryRepository) Update(ctx context.Context, e *domain.Entry) error {
	query := `
		UPDATE entries SET title = $1, area = $2, finding = $3, importance = $4, application = $5,
			audience = $6, evidence_level = $7, source_link = $8, image_url = $9, updated_at = $10
		WHERE id = $11 AND researcher_id = $12
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Title, e.Area, e.Finding, e.Importance, e.Application,
		e.Audience, e.EvidenceLevel, e.SourceLink, e.ImageURL, e.UpdatedAt,
		e.ID, e.ResearcherID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *entryRepository) Delete(ctx context.Context, id, researcherID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM entries WHERE id = $1 AND researcher_id = $2`, id, researcherID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// escapeLike escapes LIKE wildcards so the query matches them literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
