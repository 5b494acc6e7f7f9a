package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"acaradashboard/internal/domain"
)

// Schema creates the acara table. tanggal is kept in its own column so that it
// comes back as a native timestamp; the remaining fields live in data.
const Schema = `
CREATE TABLE IF NOT EXISTS acara (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id    TEXT NOT NULL,
	tanggal    TIMESTAMPTZ NULL,
	data       JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS acara_user_id_idx ON acara (user_id);
`

// orderColumns maps accepted sort keys to SQL expressions.
var orderColumns = map[string]string{
	"tanggal": "tanggal",
	"name":    "data->>'name'",
}

// EnsureSchema applies Schema.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply acara schema: %w", err)
	}
	return nil
}

type acaraRepository struct {
	DB *sql.DB
}

func NewAcaraRepository(db *sql.DB) domain.AcaraStore {
	return &acaraRepository{
		DB: db,
	}
}

func (r *acaraRepository) Insert(ctx context.Context, doc *domain.AcaraDocument) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal acara: %w", err)
	}
	query := `
		INSERT INTO acara (user_id, tanggal, data)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var tanggal sql.NullTime
	if !doc.Tanggal.IsZero() {
		tanggal = sql.NullTime{Time: doc.Tanggal, Valid: true}
	}
	var id string
	if err := r.DB.QueryRowContext(ctx, query, doc.UserID, tanggal, data).Scan(&id); err != nil {
		return "", fmt.Errorf("insert acara: %w", err)
	}
	return id, nil
}

func (r *acaraRepository) ListByOwner(ctx context.Context, userID string, opts domain.ListOptions) ([]domain.RawDocument, error) {
	query, args, err := listQuery(userID, opts)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list acara: %w", err)
	}
	defer rows.Close()

	var out []domain.RawDocument
	for rows.Next() {
		var (
			id      string
			tanggal sql.NullTime
			data    []byte
		)
		if err := rows.Scan(&id, &tanggal, &data); err != nil {
			return nil, fmt.Errorf("scan acara: %w", err)
		}
		fields := map[string]any{}
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("decode acara %s: %w", id, err)
		}
		// The JSON copy of tanggal is a string; only the column is authoritative.
		delete(fields, "tanggal")
		if tanggal.Valid {
			fields["tanggal"] = tanggal.Time
		}
		out = append(out, domain.RawDocument{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate acara: %w", err)
	}
	return out, nil
}

func (r *acaraRepository) CountByOwner(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM acara WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count acara: %w", err)
	}
	return n, nil
}

// listQuery builds the owner query, adding ORDER BY and LIMIT/OFFSET only when
// requested. Paged queries always end their ordering with id.
func listQuery(userID string, opts domain.ListOptions) (string, []any, error) {
	var b strings.Builder
	b.WriteString("SELECT id, tanggal, data FROM acara WHERE user_id = $1")
	args := []any{userID}
	var order []string
	if opts.Sort != nil {
		col, ok := orderColumns[opts.Sort.Field]
		if !ok {
			return "", nil, fmt.Errorf("unsupported sort field %q", opts.Sort.Field)
		}
		dir := "ASC"
		if opts.Sort.Descending {
			dir = "DESC"
		}
		order = append(order, fmt.Sprintf("%s %s NULLS LAST", col, dir))
	}
	p := opts.Pagination
	paged := p != nil && p.Limit() > 0
	if paged {
		// Pages must not overlap, so ties are broken by id.
		order = append(order, "id ASC")
	}
	if len(order) > 0 {
		b.WriteString(" ORDER BY " + strings.Join(order, ", "))
	}
	if paged {
		fmt.Fprintf(&b, " LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, p.Limit(), p.Offset())
	}
	return b.String(), args, nil
}
