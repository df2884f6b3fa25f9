package vdbatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// BuilderConfig configures the index build pipeline.
type BuilderConfig struct {
	Records *RecordStore // Entity record source (required)
	Index   SearchIndex  // Target index (required)
	URLs    SiteURLs     // Site URL computation
	Logger  *slog.Logger // Logger (nil = slog.Default())
}

// Builder runs the full entity-to-search-document pipeline: delete the
// index, recreate it with its analyzers and mappings, then stream every
// entity kind through normalization and sequential upserts.
type Builder struct {
	records *RecordStore
	index   SearchIndex
	urls    SiteURLs
	log     *slog.Logger
}

// NewBuilder wires a Builder from its collaborators.
func NewBuilder(cfg BuilderConfig) (*Builder, error) {
	if cfg.Records == nil {
		return nil, fmt.Errorf("record store is required")
	}
	if cfg.Index == nil {
		return nil, fmt.Errorf("search index is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Builder{
		records: cfg.Records,
		index:   cfg.Index,
		urls:    cfg.URLs,
		log:     cfg.Logger,
	}, nil
}

// RebuildIndex runs the strict build sequence: ensure the old index is
// gone, create the new one, then upsert all villagers followed by all
// items, one synchronous document at a time. The first failure aborts
// the run; a partially populated index is left as-is.
func (b *Builder) RebuildIndex(ctx context.Context) (int, error) {
	log := b.log.With("run", uuid.New().String())

	if err := b.index.EnsureAbsent(); err != nil {
		return 0, fmt.Errorf("delete index: %w", err)
	}
	if err := b.index.Create(); err != nil {
		return 0, fmt.Errorf("create index: %w", err)
	}

	total := 0
	for _, kind := range Kinds {
		n, err := b.indexKind(ctx, kind, log)
		total += n
		if err != nil {
			return total, fmt.Errorf("index %s: %w", kind.Plural(), err)
		}
	}

	log.Info("index rebuilt", "documents", total)
	return total, nil
}

// indexKind streams one entity kind into the index.
func (b *Builder) indexKind(ctx context.Context, kind Kind, log *slog.Logger) (int, error) {
	n := 0
	err := b.records.Walk(ctx, kind, func(rec *EntityRecord) error {
		id, doc, err := BuildDocument(rec, kind, b.urls)
		if err != nil {
			return err
		}
		if err := b.index.Upsert(id, doc); err != nil {
			return err
		}
		n++
		log.Info("indexed", "id", id)
		return nil
	})
	return n, err
}

// DeleteIndex removes the index, treating absence as success.
func (b *Builder) DeleteIndex() error {
	return b.index.EnsureAbsent()
}

// Close releases the underlying index.
func (b *Builder) Close() error {
	return b.index.Close()
}
