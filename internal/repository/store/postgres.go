package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresConfig mirrors the database section of the app config.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Postgres keeps every collection in a single records table with a jsonb
// document column. Filters compile to jsonb operators, so the storage layer
// stays one table regardless of how many entity types exist.
type Postgres struct {
	db *sqlx.DB
}

const recordsDDL = `
CREATE TABLE IF NOT EXISTS records (
	id         UUID PRIMARY KEY,
	collection TEXT NOT NULL,
	doc        JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS records_collection_idx ON records (collection, created_at);
`

func NewPostgres(cfg PostgresConfig) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(recordsDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure records table: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Insert(ctx context.Context, collection string, doc []byte) (string, error) {
	id := uuid.New().String()
	// lib/pq sends []byte as bytea; jsonb wants text.
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO records (id, collection, doc) VALUES ($1, $2, $3)`,
		id, collection, string(doc),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (p *Postgres) Query(ctx context.Context, collection string, f Filter, limit int) ([]RawRecord, error) {
	query, args := compileQuery(collection, f, limit)

	rows, err := p.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RawRecord
	for rows.Next() {
		var rec RawRecord
		if err := rows.Scan(&rec.ID, &rec.Doc); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// compileQuery turns a filter into SQL over the jsonb doc column. Set
// membership uses jsonb_exists instead of the ? operator, which lib/pq
// would mistake for a placeholder.
func compileQuery(collection string, f Filter, limit int) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, doc FROM records WHERE collection = $1`)
	args := []interface{}{collection}

	for _, c := range f.Conds {
		args = append(args, c.Field)
		fieldArg := len(args)
		switch c.Op {
		case OpEq:
			args = append(args, c.Value)
			fmt.Fprintf(&sb, ` AND doc->>$%d = $%d`, fieldArg, len(args))
		case OpMatch:
			args = append(args, likePattern(c.Value))
			fmt.Fprintf(&sb, ` AND doc->>$%d ILIKE $%d`, fieldArg, len(args))
		case OpHas:
			args = append(args, c.Value)
			fmt.Fprintf(&sb, ` AND jsonb_exists(doc->$%d, $%d)`, fieldArg, len(args))
		}
	}

	sb.WriteString(` ORDER BY created_at`)
	if limit > 0 {
		args = append(args, limit)
		fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))
	}
	return sb.String(), args
}

// likePattern wraps a substring for ILIKE, escaping LIKE metacharacters so
// user input matches literally.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func (p *Postgres) Collections(ctx context.Context) ([]string, error) {
	var collections []string
	err := p.db.SelectContext(ctx, &collections,
		`SELECT DISTINCT collection FROM records ORDER BY collection`)
	if err != nil {
		return nil, err
	}
	return collections, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
