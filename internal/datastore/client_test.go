package datastore

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDatasetteClientBatchInsert(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewDatasetteClient(ts.URL, "testtoken")
	if err := client.Connect(); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	rows := []map[string]any{{"artist": "Neu!", "title": "Neu! 75"}}
	if err := client.BatchInsert("stylus", "records", rows); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if gotPath != "/-/insert/stylus/records" {
		t.Errorf("unexpected insert path %q", gotPath)
	}
	if gotAuth != "Bearer testtoken" {
		t.Errorf("unexpected auth header %q", gotAuth)
	}
	if !strings.Contains(string(gotBody), `"Neu! 75"`) {
		t.Errorf("payload missing row data: %s", gotBody)
	}
}

func TestDatasetteClientBatchInsertAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		if err := json.NewEncoder(w).Encode(map[string]any{"error": "forbidden"}); err != nil {
			t.Errorf("Failed to encode error response: %v", err)
		}
	}))
	defer ts.Close()

	client := NewDatasetteClient(ts.URL, "testtoken")
	if err := client.Connect(); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	rows := []map[string]any{{"artist": "x"}}
	if err := client.BatchInsert("stylus", "records", rows); err == nil {
		t.Errorf("expected error, got nil")
	}
}
