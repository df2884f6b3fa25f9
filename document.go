package vdbatch

// Suggest feeds the autocomplete field of the index.
type Suggest struct {
	Input []string `json:"input"`
}

// Document is the search-indexed representation of one entity. Villager
// and item documents share the common fields; the rest are kind-specific
// and omitted when empty.
type Document struct {
	Type     string   `json:"type"`
	Suggest  Suggest  `json:"suggest"`
	Keyword  string   `json:"keyword"`
	Name     string   `json:"name"`
	Game     []string `json:"game,omitempty"`
	URL      string   `json:"url"`
	ImageURL string   `json:"imageUrl"`

	Gender      string   `json:"gender,omitempty"`
	Species     string   `json:"species,omitempty"`
	Personality []string `json:"personality,omitempty"`
	Collab      string   `json:"collab,omitempty"`
	Zodiac      string   `json:"zodiac,omitempty"`

	Category      string   `json:"category,omitempty"`
	Orderable     *bool    `json:"orderable,omitempty"`
	InteriorTheme []string `json:"interiorTheme,omitempty"`
	FashionTheme  []string `json:"fashionTheme,omitempty"`
	Set           string   `json:"set,omitempty"`
}

// BleveType routes the document to its kind-specific index mapping.
func (d *Document) BleveType() string {
	return d.Type
}

// DocumentID builds the composite, stable document identity. Re-indexing
// the same record always addresses the same document.
func DocumentID(kind Kind, id EntityID) string {
	return string(kind) + "-" + string(id)
}

// BuildDocument normalizes one entity record and assembles the final
// document payload and its id. Pure: same record and URL configuration
// always produce the same output.
func BuildDocument(rec *EntityRecord, kind Kind, urls SiteURLs) (string, *Document, error) {
	fields, err := NormalizeRecord(rec, kind)
	if err != nil {
		return "", nil, err
	}

	id := string(rec.ID)
	doc := &Document{
		Type:     string(kind),
		Suggest:  Suggest{Input: []string{rec.Name}},
		Keyword:  fields.Keyword,
		Name:     rec.Name,
		Game:     fields.Game,
		URL:      urls.EntityPage(kind, id),
		ImageURL: urls.Image(kind, id, ThumbSize),

		Gender:      fields.Gender,
		Species:     fields.Species,
		Personality: fields.Personality,
		Collab:      fields.Collab,
		Zodiac:      fields.Zodiac,

		Category:      fields.Category,
		Orderable:     fields.Orderable,
		InteriorTheme: fields.InteriorTheme,
		FashionTheme:  fields.FashionTheme,
		Set:           fields.Set,
	}

	return DocumentID(kind, rec.ID), doc, nil
}
