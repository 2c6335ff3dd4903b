package datastore

import (
	"path/filepath"
	"testing"
)

const testSchema = `CREATE TABLE IF NOT EXISTS records (
	release_id INTEGER,
	artist TEXT NOT NULL,
	title TEXT NOT NULL,
	year INTEGER,
	lowest_price REAL
)`

func TestSQLiteStoreBatchInsert(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "stylus.db"))
	if err := store.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(testSchema); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	rows := []map[string]any{
		{"release_id": 1387512, "artist": "The Beatles", "title": "Abbey Road", "year": 1969, "lowest_price": 24.99},
		{"release_id": 0, "artist": "Unknown Artist", "title": "Untitled", "year": nil, "lowest_price": nil},
	}
	if err := store.BatchInsert("stylus", "records", rows); err != nil {
		t.Fatalf("failed to batch insert: %v", err)
	}

	result, err := store.db.Query("SELECT artist, year, lowest_price FROM records ORDER BY artist")
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	defer func() { _ = result.Close() }()

	var count int
	for result.Next() {
		var artist string
		var year *int
		var lowest *float64
		if err := result.Scan(&artist, &year, &lowest); err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		switch artist {
		case "The Beatles":
			if year == nil || *year != 1969 {
				t.Errorf("expected year 1969, got %v", year)
			}
			if lowest == nil || *lowest != 24.99 {
				t.Errorf("expected lowest price 24.99, got %v", lowest)
			}
		case "Unknown Artist":
			if year != nil {
				t.Errorf("expected NULL year, got %v", *year)
			}
			if lowest != nil {
				t.Errorf("expected NULL price, got %v", *lowest)
			}
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
}

func TestSQLiteStoreEmptyBatch(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "stylus.db"))
	if err := store.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.BatchInsert("stylus", "records", nil); err != nil {
		t.Errorf("empty batch should be a no-op, got %v", err)
	}
}
