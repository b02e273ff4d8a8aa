package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/beanscout/beanscout/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-store")

// CatalogStoreWithTracing decorates any catalog store with one span per
// operation.
type CatalogStoreWithTracing struct {
	inner domain.CatalogStore
}

// NewCatalogStoreWithTracing wraps the given store.
func NewCatalogStoreWithTracing(inner domain.CatalogStore) *CatalogStoreWithTracing {
	return &CatalogStoreWithTracing{inner: inner}
}

func (s *CatalogStoreWithTracing) GetAll(ctx context.Context, kind domain.Kind) ([][]byte, error) {
	ctx, span := tracer.Start(ctx, "store.GetAll",
		trace.WithAttributes(attribute.String("catalog.kind", string(kind))),
	)
	defer span.End()

	docs, err := s.inner.GetAll(ctx, kind)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(docs)))
	return docs, nil
}

func (s *CatalogStoreWithTracing) GetByID(ctx context.Context, kind domain.Kind, id string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "store.GetByID",
		trace.WithAttributes(
			attribute.String("catalog.kind", string(kind)),
			attribute.String("catalog.id", id),
		),
	)
	defer span.End()

	doc, err := s.inner.GetByID(ctx, kind, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return doc, nil
}

func (s *CatalogStoreWithTracing) Insert(ctx context.Context, kind domain.Kind, id string, doc []byte) error {
	ctx, span := tracer.Start(ctx, "store.Insert",
		trace.WithAttributes(
			attribute.String("catalog.kind", string(kind)),
			attribute.String("catalog.id", id),
		),
	)
	defer span.End()

	if err := s.inner.Insert(ctx, kind, id, doc); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *CatalogStoreWithTracing) Update(ctx context.Context, kind domain.Kind, id string, doc []byte) error {
	ctx, span := tracer.Start(ctx, "store.Update",
		trace.WithAttributes(
			attribute.String("catalog.kind", string(kind)),
			attribute.String("catalog.id", id),
		),
	)
	defer span.End()

	if err := s.inner.Update(ctx, kind, id, doc); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s *CatalogStoreWithTracing) Delete(ctx context.Context, kind domain.Kind, id string) error {
	ctx, span := tracer.Start(ctx, "store.Delete",
		trace.WithAttributes(
			attribute.String("catalog.kind", string(kind)),
			attribute.String("catalog.id", id),
		),
	)
	defer span.End()

	if err := s.inner.Delete(ctx, kind, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
