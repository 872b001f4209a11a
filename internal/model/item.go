package model

import "fmt"

// FileItem describes a file stored on the remote server.
//
// ID is the only required field: it is the lookup key and the path segment of
// the download URL. Every other field may be absent in a list response.
type FileItem struct {
	ID        string `json:"id"`
	Text      string `json:"text,omitempty"`       // description or original filename
	FileType  string `json:"filetype,omitempty"`   // MIME type, may be missing
	FilePath  string `json:"filepath,omitempty"`   // backend path, never rendered
	CreatedAt string `json:"created_at,omitempty"` // server timestamp, unused in logic
}

// Category classifies the item by its MIME type
func (fi *FileItem) Category() Category {
	return Classify(fi.FileType)
}

// DisplayName returns the description, falling back to the raw id
func (fi *FileItem) DisplayName() string {
	if fi.Text != "" {
		return fi.Text
	}
	return fi.ID
}

// TypeLabel returns the MIME type, or a placeholder when it is missing
func (fi *FileItem) TypeLabel() string {
	if fi.FileType != "" {
		return fi.FileType
	}
	return "Unknown Type"
}

// SupportedExtensions lists well-known extensions per media kind. The list is
// advisory, used to filter the upload file picker; the server accepts any file.
var SupportedExtensions = map[Category][]string{
	CategoryImage:    {".jpg", ".jpeg", ".png", ".gif", ".webp"},
	CategoryAudio:    {".mp3", ".wav"},
	CategoryVideo:    {".mp4", ".avi", ".mov"},
	CategoryDocument: {".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".csv", ".md", ".txt"},
}

// AllSupportedExtensions returns the picker allow-list as a flat slice
func AllSupportedExtensions() []string {
	var exts []string
	for _, c := range []Category{CategoryImage, CategoryAudio, CategoryVideo, CategoryDocument} {
		exts = append(exts, SupportedExtensions[c]...)
	}
	return exts
}

// File size formatting constants
const (
	fileSizeUnit  = 1024
	fileSizeUnits = "KMGTPE"
)

// FormatFileSize formats a size in bytes to a human readable string
func FormatFileSize(bytes int64) string {
	if bytes < fileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(fileSizeUnit), 0
	for n := bytes / fileSizeUnit; n >= fileSizeUnit; n /= fileSizeUnit {
		div *= fileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), fileSizeUnits[exp])
}
