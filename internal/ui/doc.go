package ui

// Package ui implements the Fyne user interface: the gallery window with its
// upload and stream cards, category tabs, grid/list item views, the preview
// window, and the settings dialog.
