package model

import "strings"

// Category represents the media bucket a stored file belongs to
type Category string

const (
	// CategoryAll is a filter-only pseudo-category, never returned by Classify
	CategoryAll Category = "ALL"

	// CategoryDocument covers documents and every unrecognized type
	CategoryDocument Category = "DOCUMENT"

	// CategoryImage covers image/* MIME types
	CategoryImage Category = "IMAGE"

	// CategoryVideo covers video/* MIME types
	CategoryVideo Category = "VIDEO"

	// CategoryAudio covers audio/* MIME types
	CategoryAudio Category = "AUDIO"
)

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// Label returns the display name used for filter tabs
func (c Category) Label() string {
	switch c {
	case CategoryAll:
		return "All Files"
	case CategoryDocument:
		return "Documents"
	case CategoryImage:
		return "Images"
	case CategoryVideo:
		return "Videos"
	case CategoryAudio:
		return "Music"
	default:
		return "Unknown"
	}
}

// HasTransport returns true if files of this category are driven by a
// time-based media transport when previewed
func (c Category) HasTransport() bool {
	return c == CategoryVideo || c == CategoryAudio
}

// FilterCategories returns the categories shown as filter tabs, in tab order
func FilterCategories() []Category {
	return []Category{CategoryAll, CategoryDocument, CategoryImage, CategoryVideo, CategoryAudio}
}

// documentIndicators are MIME fragments that mark common document formats
var documentIndicators = []string{
	"pdf",
	"word",
	"excel",
	"sheet",
	"presentation",
	"text/",
	"csv",
	"markdown",
}

// Classify maps a MIME type string to a media category. It never fails:
// absent, empty, or unrecognized input classifies as CategoryDocument.
func Classify(mime string) Category {
	if mime == "" {
		return CategoryDocument
	}

	lower := strings.ToLower(mime)

	switch {
	case strings.HasPrefix(lower, "image/"):
		return CategoryImage
	case strings.HasPrefix(lower, "video/"):
		return CategoryVideo
	case strings.HasPrefix(lower, "audio/"):
		return CategoryAudio
	}

	for _, indicator := range documentIndicators {
		if strings.Contains(lower, indicator) {
			return CategoryDocument
		}
	}

	// Safe fallback for anything we do not recognize
	return CategoryDocument
}
