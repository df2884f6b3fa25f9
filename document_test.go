package vdbatch

import (
	"encoding/json"
	"testing"
)

func TestBuildDocumentVillager(t *testing.T) {
	rec := mustRecord(t, `{"id":"bob","name":"Bob","gender":"male","species":"cat","birthday":"01-01","games":{"AC:NH":{"personality":"lazy"}}}`)
	urls := SiteURLs{Base: "https://example.com"}

	id, doc, err := BuildDocument(rec, KindVillager, urls)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if id != "villager-bob" {
		t.Errorf("expected id villager-bob, got %q", id)
	}
	if doc.Type != "villager" {
		t.Errorf("expected type villager, got %q", doc.Type)
	}
	if len(doc.Suggest.Input) != 1 || doc.Suggest.Input[0] != "Bob" {
		t.Errorf("expected suggest input [Bob], got %v", doc.Suggest.Input)
	}
	if doc.Keyword != "bob" || doc.Name != "Bob" {
		t.Errorf("unexpected keyword/name: %q %q", doc.Keyword, doc.Name)
	}
	if doc.URL != "https://example.com/villager/bob" {
		t.Errorf("unexpected url %q", doc.URL)
	}
	if doc.ImageURL != "https://example.com/images/villagers/thumb/bob.png" {
		t.Errorf("unexpected image url %q", doc.ImageURL)
	}
	if doc.Zodiac != "capricorn" {
		t.Errorf("expected zodiac capricorn, got %q", doc.Zodiac)
	}
	if doc.BleveType() != "villager" {
		t.Errorf("expected bleve type villager, got %q", doc.BleveType())
	}
}

func TestBuildDocumentItemNumericID(t *testing.T) {
	rec := mustRecord(t, `{"id":7,"name":"Chair","category":"furniture","games":{"g1":{"orderable":true,"set":"A"},"g2":{"orderable":false,"set":"B"}}}`)

	id, doc, err := BuildDocument(rec, KindItem, SiteURLs{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if id != "item-7" {
		t.Errorf("expected id item-7, got %q", id)
	}
	if doc.Orderable == nil || *doc.Orderable {
		t.Errorf("expected orderable false, got %v", doc.Orderable)
	}
	if doc.Set != "B" {
		t.Errorf("expected set B, got %q", doc.Set)
	}
	if doc.URL != "/item/7" {
		t.Errorf("unexpected url %q", doc.URL)
	}
}

func TestBuildDocumentDeterministic(t *testing.T) {
	src := `{"id":"bob","name":"Bob","birthday":"03-21","games":{"g1":{"personality":"lazy"},"g2":{"personality":"jock"}}}`
	urls := SiteURLs{Base: "https://example.com"}

	id1, doc1, err := BuildDocument(mustRecord(t, src), KindVillager, urls)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	id2, doc2, err := BuildDocument(mustRecord(t, src), KindVillager, urls)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if id1 != id2 {
		t.Errorf("ids differ: %q vs %q", id1, id2)
	}

	b1, _ := json.Marshal(doc1)
	b2, _ := json.Marshal(doc2)
	if string(b1) != string(b2) {
		t.Errorf("documents differ:\n%s\n%s", b1, b2)
	}
}

func TestDocumentJSONOmitsEmptyKindFields(t *testing.T) {
	rec := mustRecord(t, `{"id":"a","name":"Ana"}`)
	_, doc, err := BuildDocument(rec, KindVillager, SiteURLs{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, absent := range []string{"zodiac", "category", "orderable", "set", "interiorTheme", "fashionTheme"} {
		if _, ok := m[absent]; ok {
			t.Errorf("expected %s to be omitted", absent)
		}
	}
	if m["collab"] != "Standard" {
		t.Errorf("expected collab Standard, got %v", m["collab"])
	}
}
