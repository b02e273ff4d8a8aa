package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// PostgresCatalogStore keeps catalog documents in a single JSONB table,
// addressed by (kind, id). It deliberately stays a key-value document store;
// no relational schema is modeled.
type PostgresCatalogStore struct {
	db *sql.DB
}

// NewPostgresCatalogStore creates a store over an open connection.
func NewPostgresCatalogStore(db *sql.DB) *PostgresCatalogStore {
	return &PostgresCatalogStore{db: db}
}

// Migrate creates the documents table if it does not exist.
func (s *PostgresCatalogStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS catalog_documents (
			kind TEXT NOT NULL,
			id   TEXT NOT NULL,
			doc  JSONB NOT NULL,
			PRIMARY KEY (kind, id)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create catalog_documents table: %w", err)
	}
	return nil
}

func (s *PostgresCatalogStore) GetAll(ctx context.Context, kind domain.Kind) ([][]byte, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT doc FROM catalog_documents WHERE kind = $1 ORDER BY id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s documents: %w", kind, err)
	}
	defer rows.Close()

	var docs [][]byte
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", kind, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s documents: %w", kind, err)
	}
	return docs, nil
}

func (s *PostgresCatalogStore) GetByID(ctx context.Context, kind domain.Kind, id string) ([]byte, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM catalog_documents WHERE kind = $1 AND id = $2`,
		string(kind), id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %q: %w", kind, id, err)
	}
	return doc, nil
}

func (s *PostgresCatalogStore) Insert(ctx context.Context, kind domain.Kind, id string, doc []byte) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO catalog_documents (kind, id, doc) VALUES ($1, $2, $3)
		 ON CONFLICT (kind, id) DO NOTHING`,
		string(kind), id, doc)
	if err != nil {
		return fmt.Errorf("failed to insert %s %q: %w", kind, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

func (s *PostgresCatalogStore) Update(ctx context.Context, kind domain.Kind, id string, doc []byte) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE catalog_documents SET doc = $3 WHERE kind = $1 AND id = $2`,
		string(kind), id, doc)
	if err != nil {
		return fmt.Errorf("failed to update %s %q: %w", kind, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PostgresCatalogStore) Delete(ctx context.Context, kind domain.Kind, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM catalog_documents WHERE kind = $1 AND id = $2`,
		string(kind), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s %q: %w", kind, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
