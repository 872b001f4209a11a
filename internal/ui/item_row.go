package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/omnicloud/omnicloud-desktop/internal/model"
)

// categoryIcon returns the glyph shown next to items of the given category
func categoryIcon(category model.Category) string {
	switch category {
	case model.CategoryImage:
		return IconImage
	case model.CategoryVideo:
		return IconVideo
	case model.CategoryAudio:
		return IconMusic
	default:
		return IconDocument
	}
}

// ItemRow is a compact one-line row for the list view: category glyph, name,
// MIME type and timestamp. Selection is handled by the enclosing list.
type ItemRow struct {
	widget.BaseWidget

	item model.FileItem

	iconLabel    *widget.Label
	titleLabel   *widget.Label
	typeLabel    *widget.Label
	createdLabel *widget.Label

	layout *fyne.Container
}

// NewItemRow creates a new item row widget
func NewItemRow(item model.FileItem) *ItemRow {
	ir := &ItemRow{item: item}
	ir.ExtendBaseWidget(ir)
	ir.createUI()
	ir.updateFromItem()
	return ir
}

// UpdateItem updates the row with new item data
func (ir *ItemRow) UpdateItem(item model.FileItem) {
	ir.item = item
	ir.updateFromItem()
	ir.Refresh()
}

// createUI creates the UI components
func (ir *ItemRow) createUI() {
	ir.iconLabel = widget.NewLabel("")

	ir.titleLabel = widget.NewLabel("")
	ir.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ir.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ir.titleLabel.Alignment = fyne.TextAlignLeading

	ir.typeLabel = widget.NewLabel("")
	ir.typeLabel.Alignment = fyne.TextAlignTrailing

	ir.createdLabel = widget.NewLabel("")
	ir.createdLabel.Alignment = fyne.TextAlignTrailing
	ir.createdLabel.TextStyle = fyne.TextStyle{Monospace: true}

	rightSide := container.NewHBox(ir.typeLabel, ir.createdLabel)
	ir.layout = container.NewBorder(nil, nil, ir.iconLabel, rightSide, ir.titleLabel)
}

// updateFromItem updates UI components based on item data
func (ir *ItemRow) updateFromItem() {
	ir.iconLabel.SetText(categoryIcon(ir.item.Category()))
	ir.titleLabel.SetText(ir.item.DisplayName())
	ir.typeLabel.SetText(ir.item.TypeLabel())

	if ir.item.CreatedAt != "" {
		ir.createdLabel.SetText(ir.item.CreatedAt)
	} else {
		ir.createdLabel.SetText(DashPlaceholder)
	}
}

// CreateRenderer creates the widget renderer
func (ir *ItemRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ir.layout)
}

// MinSize returns the minimum row size
func (ir *ItemRow) MinSize() fyne.Size {
	min := ir.BaseWidget.MinSize()
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
