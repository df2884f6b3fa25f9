package vdbatch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/snabb/sitemap"
)

// SitemapWriter regenerates the sitemap file from the entity records:
// the site root plus one URL per entity detail page.
type SitemapWriter struct {
	Records *RecordStore
	URLs    SiteURLs
	Out     string       // Output file path
	Logger  *slog.Logger // nil = slog.Default()
}

// Generate walks every entity kind and writes the sitemap atomically
// (temp file + rename), so a failed run never leaves a truncated file.
func (sw *SitemapWriter) Generate(ctx context.Context) error {
	log := sw.Logger
	if log == nil {
		log = slog.Default()
	}

	sm := sitemap.New()
	now := time.Now()
	sm.Add(&sitemap.URL{
		Loc:        sw.URLs.Root(),
		LastMod:    &now,
		ChangeFreq: sitemap.Daily,
	})

	total := 1
	for _, kind := range Kinds {
		err := sw.Records.Walk(ctx, kind, func(rec *EntityRecord) error {
			sm.Add(&sitemap.URL{
				Loc:        sw.URLs.EntityPage(kind, string(rec.ID)),
				LastMod:    &now,
				ChangeFreq: sitemap.Weekly,
			})
			total++
			return nil
		})
		if err != nil {
			return fmt.Errorf("collect %s URLs: %w", kind.Plural(), err)
		}
	}

	if err := atomicWriteSitemap(sw.Out, sm); err != nil {
		return err
	}

	log.Info("sitemap generated", "path", sw.Out, "urls", total)
	return nil
}

// atomicWriteSitemap writes the sitemap XML to path via temp file + rename.
func atomicWriteSitemap(path string, sm *sitemap.Sitemap) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := sm.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write sitemap: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
