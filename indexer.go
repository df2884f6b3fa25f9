package vdbatch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/char/asciifolding"
	"github.com/blevesearch/bleve/v2/analysis/token/edgengram"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/single"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Analyzer and filter names registered on the index.
const (
	// AnalyzerFold lowercases and ASCII-folds the whole value as a single
	// token, for exact and keyword-style matching.
	AnalyzerFold = "vdb_ascii_fold"

	// AnalyzerPartial additionally emits edge n-grams of the folded
	// token, for typeahead and substring matching.
	AnalyzerPartial = "vdb_ascii_fold_partial_match"

	edgeNgramFilter = "vdb_edge_ngram"

	// Edge n-gram sizes for the partial-match analyzer.
	EdgeNgramMin = 2
	EdgeNgramMax = 10
)

// ErrIndexNotOpen is returned when documents are sent to an index that
// has not been created in this run.
var ErrIndexNotOpen = errors.New("index not open")

// SearchIndex owns the index lifecycle against the document store.
type SearchIndex interface {
	// EnsureAbsent deletes the index. Absence is the goal state, so an
	// already-missing index is success; any other failure propagates.
	EnsureAbsent() error
	// Create builds the index with its analyzers and field mappings.
	// The index must be absent.
	Create() error
	// Upsert writes one document synchronously. Re-sending the same id
	// overwrites, never duplicates.
	Upsert(id string, doc *Document) error
	// Count reports the number of documents in the open index.
	Count() (uint64, error)
	Close() error
}

// BleveIndex implements SearchIndex on an embedded Bleve index stored
// under root/name.
type BleveIndex struct {
	name string
	path string
	idx  bleve.Index
}

var _ SearchIndex = (*BleveIndex)(nil)

// NewBleveIndex configures (but does not open) an index named name under
// the root directory.
func NewBleveIndex(root, name string) *BleveIndex {
	return &BleveIndex{
		name: name,
		path: filepath.Join(root, name),
	}
}

// Name returns the index name.
func (bi *BleveIndex) Name() string {
	return bi.name
}

// EnsureAbsent removes the index directory. A missing directory already
// satisfies the goal state and is not an error; genuine filesystem
// failures still surface.
func (bi *BleveIndex) EnsureAbsent() error {
	if err := os.RemoveAll(bi.path); err != nil {
		return fmt.Errorf("delete index %s: %w", bi.name, err)
	}
	return nil
}

// Create builds a fresh index: first the text-analysis settings, then the
// per-kind field mappings, in that order.
func (bi *BleveIndex) Create() error {
	im, err := buildIndexSettings()
	if err != nil {
		return fmt.Errorf("index settings: %w", err)
	}
	addKindMappings(im)

	idx, err := bleve.New(bi.path, im)
	if err != nil {
		return fmt.Errorf("create index %s: %w", bi.name, err)
	}
	bi.idx = idx
	return nil
}

// Upsert indexes one document under its composite id.
func (bi *BleveIndex) Upsert(id string, doc *Document) error {
	if bi.idx == nil {
		return fmt.Errorf("upsert %s: %w", id, ErrIndexNotOpen)
	}
	if err := bi.idx.Index(id, doc); err != nil {
		return fmt.Errorf("index document %s: %w", id, err)
	}
	return nil
}

// Count returns the number of indexed documents.
func (bi *BleveIndex) Count() (uint64, error) {
	if bi.idx == nil {
		return 0, ErrIndexNotOpen
	}
	return bi.idx.DocCount()
}

// Close closes the underlying index if it was opened.
func (bi *BleveIndex) Close() error {
	if bi.idx == nil {
		return nil
	}
	err := bi.idx.Close()
	bi.idx = nil
	return err
}

// buildIndexSettings registers the custom analysis pipeline: an ASCII
// folding char filter feeding a single-token tokenizer, lowercased, with
// an edge n-gram variant for partial matching.
func buildIndexSettings() (*mapping.IndexMappingImpl, error) {
	im := bleve.NewIndexMapping()

	if err := im.AddCustomTokenFilter(edgeNgramFilter, map[string]interface{}{
		"type": edgengram.Name,
		"min":  float64(EdgeNgramMin),
		"max":  float64(EdgeNgramMax),
	}); err != nil {
		return nil, fmt.Errorf("register edge ngram filter: %w", err)
	}

	if err := im.AddCustomAnalyzer(AnalyzerFold, map[string]interface{}{
		"type":          custom.Name,
		"char_filters":  []string{asciifolding.Name},
		"tokenizer":     single.Name,
		"token_filters": []string{lowercase.Name},
	}); err != nil {
		return nil, fmt.Errorf("register %s analyzer: %w", AnalyzerFold, err)
	}

	if err := im.AddCustomAnalyzer(AnalyzerPartial, map[string]interface{}{
		"type":          custom.Name,
		"char_filters":  []string{asciifolding.Name},
		"tokenizer":     single.Name,
		"token_filters": []string{lowercase.Name, edgeNgramFilter},
	}); err != nil {
		return nil, fmt.Errorf("register %s analyzer: %w", AnalyzerPartial, err)
	}

	return im, nil
}

// addKindMappings attaches the villager and item document mappings, keyed
// by the document's type field.
func addKindMappings(im *mapping.IndexMappingImpl) {
	im.TypeField = "type"
	im.DefaultMapping.Dynamic = false
	im.AddDocumentMapping(string(KindVillager), villagerMapping())
	im.AddDocumentMapping(string(KindItem), itemMapping())
}

// entityMapping builds the field mappings shared by every entity kind.
func entityMapping() *mapping.DocumentMapping {
	dm := bleve.NewDocumentMapping()
	dm.Dynamic = false

	// Autocomplete source, analyzed with the full-token fold analyzer.
	suggestInput := bleve.NewTextFieldMapping()
	suggestInput.Analyzer = AnalyzerFold
	suggest := bleve.NewDocumentMapping()
	suggest.AddFieldMappingsAt("input", suggestInput)
	dm.AddSubDocumentMapping("suggest", suggest)

	// Display name, analyzed for partial/typeahead matching.
	nameField := bleve.NewTextFieldMapping()
	nameField.Analyzer = AnalyzerPartial
	dm.AddFieldMappingsAt("name", nameField)

	for _, field := range []string{"type", "keyword", "game"} {
		dm.AddFieldMappingsAt(field, bleve.NewKeywordFieldMapping())
	}

	// URLs are carried for display only.
	for _, field := range []string{"url", "imageUrl"} {
		fm := bleve.NewTextFieldMapping()
		fm.Index = false
		fm.Store = true
		fm.IncludeInAll = false
		dm.AddFieldMappingsAt(field, fm)
	}

	return dm
}

func villagerMapping() *mapping.DocumentMapping {
	dm := entityMapping()
	for _, field := range []string{"gender", "species", "personality", "zodiac", "collab"} {
		dm.AddFieldMappingsAt(field, bleve.NewKeywordFieldMapping())
	}
	return dm
}

func itemMapping() *mapping.DocumentMapping {
	dm := entityMapping()
	for _, field := range []string{"category", "interiorTheme", "fashionTheme", "set"} {
		dm.AddFieldMappingsAt(field, bleve.NewKeywordFieldMapping())
	}
	dm.AddFieldMappingsAt("orderable", bleve.NewBooleanFieldMapping())
	return dm
}
