package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/omnicloud/omnicloud-desktop/internal/model"
)

// ItemCard is a grid cell: a thumbnail (for images) or a large category glyph,
// with the item name underneath. Thumbnails load in the background and the
// cell shows the glyph until the bytes arrive.
type ItemCard struct {
	widget.BaseWidget

	item       model.FileItem
	thumbnails *ThumbnailCache
	sourceURL  string

	glyphLabel *widget.Label
	thumbnail  *canvas.Image
	titleLabel *widget.Label

	layout *fyne.Container
}

// NewItemCard creates a new grid cell widget
func NewItemCard(thumbnails *ThumbnailCache) *ItemCard {
	ic := &ItemCard{thumbnails: thumbnails}
	ic.ExtendBaseWidget(ic)
	ic.createUI()
	return ic
}

// UpdateItem updates the cell with new item data. sourceURL is the item's
// download URL, used to fetch image thumbnails.
func (ic *ItemCard) UpdateItem(item model.FileItem, sourceURL string) {
	ic.item = item
	ic.sourceURL = sourceURL
	ic.updateFromItem()
	ic.Refresh()
}

// createUI creates the UI components
func (ic *ItemCard) createUI() {
	ic.glyphLabel = widget.NewLabel("")
	ic.glyphLabel.Alignment = fyne.TextAlignCenter

	ic.thumbnail = canvas.NewImageFromResource(nil)
	ic.thumbnail.FillMode = canvas.ImageFillContain
	ic.thumbnail.SetMinSize(fyne.NewSize(ThumbnailSize, CardIconHeight))
	ic.thumbnail.Hide()

	ic.titleLabel = widget.NewLabel("")
	ic.titleLabel.Alignment = fyne.TextAlignCenter
	ic.titleLabel.Truncation = fyne.TextTruncateEllipsis

	preview := container.NewStack(ic.thumbnail, ic.glyphLabel)
	ic.layout = container.NewBorder(nil, ic.titleLabel, nil, nil, preview)
}

// updateFromItem updates UI components based on item data
func (ic *ItemCard) updateFromItem() {
	ic.titleLabel.SetText(ic.item.DisplayName())
	ic.glyphLabel.SetText(categoryIcon(ic.item.Category()))
	ic.glyphLabel.Show()
	ic.thumbnail.Resource = nil
	ic.thumbnail.Hide()

	if ic.item.Category() != model.CategoryImage || ic.sourceURL == "" {
		return
	}

	// the cell may be recycled for a different item before the fetch lands
	requestedID := ic.item.ID
	ic.thumbnails.Load(requestedID, ic.sourceURL, func(res fyne.Resource) {
		fyne.Do(func() {
			if ic.item.ID != requestedID {
				return
			}
			ic.thumbnail.Resource = res
			ic.thumbnail.Show()
			ic.glyphLabel.Hide()
			ic.thumbnail.Refresh()
		})
	})
}

// CreateRenderer creates the widget renderer
func (ic *ItemCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ic.layout)
}

// MinSize returns the fixed cell size used by the grid
func (ic *ItemCard) MinSize() fyne.Size {
	return fyne.NewSize(CardWidth, CardHeight)
}
