package platform

// Package platform contains OS integration glue: handing media and download
// URLs to the system default handler (browser or media player) per platform.
