package main

import (
	"fmt"

	"github.com/lomacy/vdbatch"
)

func runDeleteSearchIndex() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	index := vdbatch.NewBleveIndex(cfg.Index.Dir, cfg.Index.Name)
	if err := index.EnsureAbsent(); err != nil {
		return fmt.Errorf("delete search index: %w", err)
	}

	fmt.Printf("Deleted %s index.\n", index.Name())
	return nil
}
