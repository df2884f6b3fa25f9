package main

import (
	"context"
	"fmt"

	"github.com/lomacy/vdbatch"
)

func runBuildSearchIndex() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	index := vdbatch.NewBleveIndex(cfg.Index.Dir, cfg.Index.Name)
	builder, err := vdbatch.NewBuilder(vdbatch.BuilderConfig{
		Records: vdbatch.NewRecordStore(cfg.Data.Dir),
		Index:   index,
		URLs:    vdbatch.SiteURLs{Base: cfg.Site.BaseURL},
	})
	if err != nil {
		return fmt.Errorf("init builder: %w", err)
	}
	defer builder.Close()

	n, err := builder.RebuildIndex(context.Background())
	if err != nil {
		return fmt.Errorf("build search index: %w", err)
	}

	fmt.Printf("Built %s index (%d documents).\n", index.Name(), n)
	return nil
}
