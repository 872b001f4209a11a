package model

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		mime     string
		expected Category
	}{
		{"", CategoryDocument},
		{"image/png", CategoryImage},
		{"image/jpeg", CategoryImage},
		{"IMAGE/GIF", CategoryImage},
		{"video/mp4", CategoryVideo},
		{"Video/QuickTime", CategoryVideo},
		{"audio/mpeg", CategoryAudio},
		{"AUDIO/WAV", CategoryAudio},
		{"application/pdf", CategoryDocument},
		{"application/msword", CategoryDocument},
		{"application/vnd.ms-excel", CategoryDocument},
		{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", CategoryDocument},
		{"application/vnd.ms-powerpoint.presentation", CategoryDocument},
		{"text/plain", CategoryDocument},
		{"text/csv", CategoryDocument},
		{"text/markdown", CategoryDocument},
		{"application/octet-stream", CategoryDocument},
		{"application/zip", CategoryDocument},
		{"gibberish", CategoryDocument},
	}

	for _, test := range tests {
		result := Classify(test.mime)
		if result != test.expected {
			t.Errorf("Classify(%q) = %s, expected %s", test.mime, result, test.expected)
		}
	}
}

func TestClassify_NeverReturnsAll(t *testing.T) {
	inputs := []string{"", "image/png", "video/mp4", "audio/mp3", "anything", "all", "ALL"}
	for _, mime := range inputs {
		if Classify(mime) == CategoryAll {
			t.Errorf("Classify(%q) returned the filter-only ALL category", mime)
		}
	}
}

func TestCategory_Label(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategoryAll, "All Files"},
		{CategoryDocument, "Documents"},
		{CategoryImage, "Images"},
		{CategoryVideo, "Videos"},
		{CategoryAudio, "Music"},
		{Category("bogus"), "Unknown"},
	}

	for _, test := range tests {
		if label := test.category.Label(); label != test.expected {
			t.Errorf("Label() for %s = %q, expected %q", test.category, label, test.expected)
		}
	}
}

func TestCategory_HasTransport(t *testing.T) {
	if !CategoryVideo.HasTransport() {
		t.Error("Expected video to have a transport")
	}
	if !CategoryAudio.HasTransport() {
		t.Error("Expected audio to have a transport")
	}
	if CategoryImage.HasTransport() {
		t.Error("Images render statically, no transport expected")
	}
	if CategoryDocument.HasTransport() {
		t.Error("Documents render a download affordance, no transport expected")
	}
	if CategoryAll.HasTransport() {
		t.Error("ALL is filter-only, no transport expected")
	}
}

func TestFilterCategories(t *testing.T) {
	categories := FilterCategories()

	if len(categories) != 5 {
		t.Fatalf("Expected 5 filter categories, got %d", len(categories))
	}

	if categories[0] != CategoryAll {
		t.Errorf("Expected first filter tab to be ALL, got %s", categories[0])
	}
}
