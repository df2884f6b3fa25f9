package vdbatch

import (
	"fmt"
	"strings"
)

// DefaultCollab is used for villagers whose record carries no collab tag.
const DefaultCollab = "Standard"

// Fields is the flat, query-optimized field set derived from one entity
// record. Villager and item records populate disjoint subsets beyond the
// shared fields.
type Fields struct {
	Keyword string
	Game    []string

	// Villager fields.
	Gender      string
	Species     string
	Personality []string
	Collab      string
	Zodiac      string

	// Item fields.
	Category      string
	Orderable     *bool
	InteriorTheme []string
	FashionTheme  []string
	Set           string
}

// NormalizeRecord flattens one entity record into its search field set.
// A record without a name cannot be indexed and fails the whole run.
func NormalizeRecord(rec *EntityRecord, kind Kind) (*Fields, error) {
	if rec.Name == "" {
		return nil, fmt.Errorf("record %q: %w", rec.ID, ErrMissingName)
	}

	f := &Fields{Keyword: strings.ToLower(rec.Name)}

	if rec.Games != nil {
		for pair := rec.Games.Oldest(); pair != nil; pair = pair.Next() {
			f.Game = append(f.Game, pair.Key)
			entry := pair.Value

			switch kind {
			case KindVillager:
				if entry.Personality != "" && !containsString(f.Personality, entry.Personality) {
					f.Personality = append(f.Personality, entry.Personality)
				}
			case KindItem:
				// Reassigned on every iteration: the last game in file
				// order wins, matching the data source's historical
				// behavior. Values from earlier games are discarded,
				// including when the later game leaves a field unset.
				f.Orderable = nil
				if entry.Orderable != nil {
					v := bool(*entry.Orderable)
					f.Orderable = &v
				}
				f.InteriorTheme = entry.InteriorThemes
				f.FashionTheme = entry.FashionThemes
				f.Set = entry.Set
			}
		}
	}

	switch kind {
	case KindVillager:
		f.Gender = rec.Gender
		f.Species = rec.Species
		f.Collab = rec.Collab
		if f.Collab == "" {
			f.Collab = DefaultCollab
		}
		if rec.Birthday != "" {
			sign, err := signForBirthday(rec.Birthday)
			if err != nil {
				return nil, fmt.Errorf("record %q: %w", rec.ID, err)
			}
			f.Zodiac = sign
		}
	case KindItem:
		f.Category = rec.Category
	}

	return f, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
