package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

// MemoryCatalogStore is a map-backed catalog store for tests and local
// fixture runs.
type MemoryCatalogStore struct {
	mu   sync.RWMutex
	docs map[domain.Kind]map[string][]byte
}

// NewMemoryCatalogStore creates an empty in-memory store.
func NewMemoryCatalogStore() *MemoryCatalogStore {
	return &MemoryCatalogStore{
		docs: make(map[domain.Kind]map[string][]byte),
	}
}

// Seed marshals a record and inserts it, overwriting any existing document.
func (s *MemoryCatalogStore) Seed(kind domain.Kind, id string, record any) error {
	doc, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal %s %q: %w", kind, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs[kind] == nil {
		s.docs[kind] = make(map[string][]byte)
	}
	s.docs[kind][id] = doc
	return nil
}

func (s *MemoryCatalogStore) GetAll(ctx context.Context, kind domain.Kind) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.docs[kind]))
	for id := range s.docs[kind] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([][]byte, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, append([]byte(nil), s.docs[kind][id]...))
	}
	return docs, nil
}

func (s *MemoryCatalogStore) GetByID(ctx context.Context, kind domain.Kind, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[kind][id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), doc...), nil
}

func (s *MemoryCatalogStore) Insert(ctx context.Context, kind domain.Kind, id string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[kind][id]; ok {
		return domain.ErrAlreadyExists
	}
	if s.docs[kind] == nil {
		s.docs[kind] = make(map[string][]byte)
	}
	s.docs[kind][id] = append([]byte(nil), doc...)
	return nil
}

func (s *MemoryCatalogStore) Update(ctx context.Context, kind domain.Kind, id string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[kind][id]; !ok {
		return domain.ErrNotFound
	}
	s.docs[kind][id] = append([]byte(nil), doc...)
	return nil
}

func (s *MemoryCatalogStore) Delete(ctx context.Context, kind domain.Kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[kind][id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs[kind], id)
	return nil
}
