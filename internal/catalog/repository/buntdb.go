package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/buntdb"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// BuntDBCatalogStore is the embedded document-store backend. Documents are
// stored as JSON values under "<kind>:<id>" keys; GetAll is a key-prefix
// scan. Open with ":memory:" for an ephemeral store.
type BuntDBCatalogStore struct {
	db *buntdb.DB
}

// OpenBuntDBCatalogStore opens (or creates) the store file at path.
func OpenBuntDBCatalogStore(path string) (*BuntDBCatalogStore, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog store: %w", err)
	}
	return &BuntDBCatalogStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BuntDBCatalogStore) Close() error {
	return s.db.Close()
}

func docKey(kind domain.Kind, id string) string {
	return string(kind) + ":" + id
}

func (s *BuntDBCatalogStore) GetAll(ctx context.Context, kind domain.Kind) ([][]byte, error) {
	var docs [][]byte
	err := s.db.View(func(tx *buntdb.Tx) error {
		return tx.AscendKeys(string(kind)+":*", func(key, value string) bool {
			docs = append(docs, []byte(value))
			return true
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s documents: %w", kind, err)
	}
	return docs, nil
}

func (s *BuntDBCatalogStore) GetByID(ctx context.Context, kind domain.Kind, id string) ([]byte, error) {
	var doc []byte
	err := s.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(docKey(kind, id))
		if err != nil {
			return err
		}
		doc = []byte(value)
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %q: %w", kind, id, err)
	}
	return doc, nil
}

func (s *BuntDBCatalogStore) Insert(ctx context.Context, kind domain.Kind, id string, doc []byte) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		key := docKey(kind, id)
		if _, err := tx.Get(key); err == nil {
			return domain.ErrAlreadyExists
		} else if !errors.Is(err, buntdb.ErrNotFound) {
			return err
		}
		_, _, err := tx.Set(key, string(doc), nil)
		return err
	})
	if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("failed to insert %s %q: %w", kind, id, err)
	}
	return err
}

func (s *BuntDBCatalogStore) Update(ctx context.Context, kind domain.Kind, id string, doc []byte) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		key := docKey(kind, id)
		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, buntdb.ErrNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		_, _, err := tx.Set(key, string(doc), nil)
		return err
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to update %s %q: %w", kind, id, err)
	}
	return err
}

func (s *BuntDBCatalogStore) Delete(ctx context.Context, kind domain.Kind, id string) error {
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, err := tx.Delete(docKey(kind, id))
		if errors.Is(err, buntdb.ErrNotFound) {
			return domain.ErrNotFound
		}
		return err
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to delete %s %q: %w", kind, id, err)
	}
	return err
}
