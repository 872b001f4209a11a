package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconGrid     = "▦"
	IconList     = "☰"
	IconClose    = "×"
	IconOnline   = "●"
	IconOffline  = "○"
	IconUpload   = "⬆"
	IconDownload = "⬇"
	IconStream   = "📡"
	IconDocument = "📄"
	IconImage    = "🖼"
	IconVideo    = "🎬"
	IconMusic    = "🎵"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	TimeSeparator      = " / "
)

// Layout sizing (item rows / grid cells)
const (
	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56

	CardWidth      float32 = 168
	CardHeight     float32 = 150
	ThumbnailSize  float32 = 120
	CardIconHeight float32 = 96
)

// Window and dialog sizing
const (
	MainWindowWidth  float32 = 900
	MainWindowHeight float32 = 640

	PreviewWindowWidth  float32 = 560
	PreviewWindowHeight float32 = 440

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 300
)

// Thumbnail fetching limits
const (
	ThumbnailMaxBytes = 8 << 20
)
