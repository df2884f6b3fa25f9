package main

import (
	"context"
	"fmt"

	"github.com/lomacy/vdbatch"
)

func runGenerateSitemap() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	writer := &vdbatch.SitemapWriter{
		Records: vdbatch.NewRecordStore(cfg.Data.Dir),
		URLs:    vdbatch.SiteURLs{Base: cfg.Site.BaseURL},
		Out:     cfg.Sitemap.Out,
	}
	if err := writer.Generate(context.Background()); err != nil {
		return fmt.Errorf("generate sitemap: %w", err)
	}

	fmt.Println("Generated sitemap.")
	return nil
}
