package vdbatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrMissingName is returned when an entity record carries no name and
// therefore cannot become a search document.
var ErrMissingName = errors.New("record has no name")

// Kind identifies an entity collection.
type Kind string

const (
	KindVillager Kind = "villager"
	KindItem     Kind = "item"
)

// Kinds lists all entity kinds in indexing order.
var Kinds = []Kind{KindVillager, KindItem}

// Plural returns the collection name used for directories and URL paths.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// EntityID accepts both string and numeric JSON identifiers; numeric ids
// are carried as their decimal string form.
type EntityID string

func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EntityID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = EntityID(n.String())
	return nil
}

func (id EntityID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// LooseBool accepts JSON true/false as well as 0/1-style numbers.
type LooseBool bool

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true":
		*b = true
	case "false", "null":
		*b = false
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected boolean-like value, got %s", data)
		}
		*b = n != 0
	}
	return nil
}

// GameEntry holds the per-game sub-structure of an entity record.
type GameEntry struct {
	Personality    string     `json:"personality,omitempty"`
	Orderable      *LooseBool `json:"orderable,omitempty"`
	InteriorThemes []string   `json:"interiorThemes,omitempty"`
	FashionThemes  []string   `json:"fashionThemes,omitempty"`
	Set            string     `json:"set,omitempty"`
}

// GameMap preserves the source JSON key order of the games mapping.
// Encounter order decides both the game list and which game wins the
// singular item fields, so plain Go maps are not usable here.
type GameMap = orderedmap.OrderedMap[string, GameEntry]

// EntityRecord is one on-disk entity, read fresh from the data directory
// on every run.
type EntityRecord struct {
	ID       EntityID `json:"id"`
	Name     string   `json:"name"`
	Gender   string   `json:"gender,omitempty"`
	Species  string   `json:"species,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
	Collab   string   `json:"collab,omitempty"`
	Category string   `json:"category,omitempty"`
	Games    *GameMap `json:"games,omitempty"`
}

// RecordStore reads per-entity JSON files from a data directory laid out
// as one subdirectory per kind (villagers/, items/).
type RecordStore struct {
	dataDir string
}

// NewRecordStore creates a store rooted at dataDir.
func NewRecordStore(dataDir string) *RecordStore {
	return &RecordStore{dataDir: dataDir}
}

func (rs *RecordStore) kindDir(kind Kind) string {
	return filepath.Join(rs.dataDir, kind.Plural())
}

// Walk streams every record of a kind to fn, one file at a time, in
// directory listing order. A file that fails to parse aborts the walk;
// there is no partial-success mode. A non-nil error from fn also stops
// the walk.
func (rs *RecordStore) Walk(_ context.Context, kind Kind, fn func(*EntityRecord) error) error {
	dir := rs.kindDir(kind)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s dir: %w", kind.Plural(), err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read record %s: %w", path, err)
		}

		var rec EntityRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return fmt.Errorf("parse record %s: %w", path, err)
		}

		if err := fn(&rec); err != nil {
			return err
		}
	}

	return nil
}
