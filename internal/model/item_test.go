package model

import (
	"encoding/json"
	"testing"
)

func TestFileItem_DisplayName(t *testing.T) {
	tests := []struct {
		text     string
		id       string
		expected string
	}{
		{"Q3 Report", "abc123", "Q3 Report"},
		{"", "abc123", "abc123"},
		{"", "", ""},
	}

	for _, test := range tests {
		item := &FileItem{ID: test.id, Text: test.text}
		result := item.DisplayName()
		if result != test.expected {
			t.Errorf("DisplayName() with text=%q, id=%q = %q, expected %q",
				test.text, test.id, result, test.expected)
		}
	}
}

func TestFileItem_Category(t *testing.T) {
	item := &FileItem{ID: "a", FileType: "image/png"}
	if item.Category() != CategoryImage {
		t.Errorf("Expected IMAGE category, got %s", item.Category())
	}

	// Missing MIME type classifies as document
	item = &FileItem{ID: "b"}
	if item.Category() != CategoryDocument {
		t.Errorf("Expected DOCUMENT category for missing filetype, got %s", item.Category())
	}
}

func TestFileItem_TypeLabel(t *testing.T) {
	item := &FileItem{ID: "a", FileType: "video/mp4"}
	if item.TypeLabel() != "video/mp4" {
		t.Errorf("Expected 'video/mp4', got %q", item.TypeLabel())
	}

	item = &FileItem{ID: "b"}
	if item.TypeLabel() != "Unknown Type" {
		t.Errorf("Expected placeholder for missing filetype, got %q", item.TypeLabel())
	}
}

func TestFileItem_DecodesWireNames(t *testing.T) {
	payload := `{"id":"f1","text":"holiday","filetype":"image/jpeg","filepath":"/srv/data/f1","created_at":"2024-05-01T10:00:00Z"}`

	var item FileItem
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if item.ID != "f1" {
		t.Errorf("Expected id 'f1', got %q", item.ID)
	}
	if item.Text != "holiday" {
		t.Errorf("Expected text 'holiday', got %q", item.Text)
	}
	if item.FileType != "image/jpeg" {
		t.Errorf("Expected filetype 'image/jpeg', got %q", item.FileType)
	}
	if item.FilePath != "/srv/data/f1" {
		t.Errorf("Expected filepath to decode, got %q", item.FilePath)
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
	}

	for _, test := range tests {
		result := FormatFileSize(test.bytes)
		if result != test.expected {
			t.Errorf("FormatFileSize(%d) = %q, expected %q", test.bytes, result, test.expected)
		}
	}
}
