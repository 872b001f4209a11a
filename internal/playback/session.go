package playback

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/omnicloud/omnicloud-desktop/internal/model"
)

// State represents the session lifecycle
type State string

const (
	// StateClosed means no session is open
	StateClosed State = "Closed"

	// StateLoading means a source is attached but metadata is unresolved
	StateLoading State = "Loading"

	// StateReady means the source is ready and paused
	StateReady State = "Ready"

	// StatePlaying means the transport is advancing
	StatePlaying State = "Playing"

	// StateEnded means playback reached end-of-stream
	StateEnded State = "Ended"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// DefaultRate is the playback speed every new session starts at
const DefaultRate = 1.0

// ExternalStreamTitle is the display title for external URL sessions
const ExternalStreamTitle = "Network Stream"

// UntitledLabel is the display title for stored items without a description
const UntitledLabel = "Untitled"

// Rates returns the playback speed allow-list, in display order
func Rates() []float64 {
	return []float64{0.5, 1.0, 1.5, 2.0}
}

// Controller owns the single active playback session. Opening a new session
// releases the previous transport; a stored item and an external URL are
// mutually exclusive targets.
type Controller struct {
	factory TransportFactory

	mu          sync.RWMutex
	state       State
	item        *model.FileItem
	externalURL string
	sourceURL   string
	category    model.Category
	transport   Transport
	rate        float64
	muted       bool
	currentTime float64
	duration    float64

	onUpdate func() // callback for UI updates
}

// NewController creates a playback controller with the given transport factory
func NewController(factory TransportFactory) *Controller {
	return &Controller{
		factory: factory,
		state:   StateClosed,
		rate:    DefaultRate,
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Controller) SetUpdateCallback(callback func()) {
	c.onUpdate = callback
}

// OpenItem opens a stored item for preview. sourceURL is the item's download
// URL. Any prior session is closed first.
func (c *Controller) OpenItem(item model.FileItem, sourceURL string) error {
	return c.open(&item, "", sourceURL, item.Category())
}

// OpenExternal opens an arbitrary network stream URL. External streams are
// driven as video.
func (c *Controller) OpenExternal(url string) error {
	return c.open(nil, url, url, model.CategoryVideo)
}

func (c *Controller) open(item *model.FileItem, externalURL, sourceURL string, category model.Category) error {
	c.mu.Lock()

	c.releaseTransportLocked()

	// every open starts from a clean slate: rate is per-session, not sticky
	c.item = item
	c.externalURL = externalURL
	c.sourceURL = sourceURL
	c.category = category
	c.rate = DefaultRate
	c.muted = false
	c.currentTime = 0
	c.duration = 0

	if !category.HasTransport() {
		// images render statically, documents expose a download affordance
		c.state = StateReady
		c.mu.Unlock()
		c.notifyUpdate()
		return nil
	}

	transport, err := c.factory(sourceURL)
	if err != nil {
		c.state = StateClosed
		c.item = nil
		c.externalURL = ""
		c.sourceURL = ""
		c.mu.Unlock()
		c.notifyUpdate()
		return fmt.Errorf("open %s: %w", sourceURL, err)
	}

	c.transport = transport
	c.state = StateLoading
	c.mu.Unlock()

	transport.SetHandlers(Handlers{
		OnMetadataLoaded: func(duration float64) {
			c.onMetadata(transport, duration)
		},
		OnTimeUpdate: func(current, duration float64) {
			c.onTimeUpdate(transport, current, duration)
		},
		OnEnded: func() {
			c.onEnded(transport)
		},
	})

	c.notifyUpdate()
	return nil
}

// Close releases the transport and discards all playback state
func (c *Controller) Close() {
	c.mu.Lock()
	c.releaseTransportLocked()
	c.state = StateClosed
	c.item = nil
	c.externalURL = ""
	c.sourceURL = ""
	c.category = ""
	c.rate = DefaultRate
	c.muted = false
	c.currentTime = 0
	c.duration = 0
	c.mu.Unlock()
	c.notifyUpdate()
}

// releaseTransportLocked closes the active transport, if any. Caller holds mu.
func (c *Controller) releaseTransportLocked() {
	if c.transport != nil {
		c.transport.Close()
		c.transport = nil
	}
}

// TogglePlay toggles between playing and paused. The resulting state reflects
// the transport's actual paused flag, not an optimistic assumption.
func (c *Controller) TogglePlay() {
	c.mu.Lock()
	transport := c.transport
	if transport == nil {
		c.mu.Unlock()
		return
	}

	if transport.Paused() {
		transport.Play()
	} else {
		transport.Pause()
	}

	if transport.Paused() {
		c.state = StateReady
	} else {
		c.state = StatePlaying
	}
	c.mu.Unlock()
	c.notifyUpdate()
}

// Seek moves the position. The displayed time updates immediately rather than
// waiting for the transport's next tick.
func (c *Controller) Seek(seconds float64) {
	c.mu.Lock()
	transport := c.transport
	if transport == nil {
		c.mu.Unlock()
		return
	}

	if seconds < 0 {
		seconds = 0
	}
	if c.duration > 0 {
		seconds = math.Min(seconds, c.duration)
	}

	transport.Seek(seconds)
	c.currentTime = seconds
	if c.state == StateEnded && seconds < c.duration {
		c.state = StateReady
	}
	c.mu.Unlock()
	c.notifyUpdate()
}

// SetRate applies a playback speed from the allow-list
func (c *Controller) SetRate(rate float64) error {
	allowed := false
	for _, r := range Rates() {
		if r == rate {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("unsupported playback rate: %g", rate)
	}

	c.mu.Lock()
	transport := c.transport
	if transport == nil {
		c.mu.Unlock()
		return fmt.Errorf("no active transport")
	}
	transport.SetRate(rate)
	c.rate = rate
	c.mu.Unlock()
	c.notifyUpdate()
	return nil
}

// SetMuted toggles audio output
func (c *Controller) SetMuted(muted bool) {
	c.mu.Lock()
	transport := c.transport
	if transport != nil {
		transport.SetMuted(muted)
	}
	c.muted = muted
	c.mu.Unlock()
	c.notifyUpdate()
}

// onMetadata handles the transport's metadata resolution
func (c *Controller) onMetadata(transport Transport, duration float64) {
	c.mu.Lock()
	if c.transport != transport {
		// a newer session owns the controller; stale transport, ignore
		c.mu.Unlock()
		return
	}
	c.duration = duration
	if c.state == StateLoading {
		c.state = StateReady
	}
	c.mu.Unlock()
	log.Printf("Playback metadata resolved: duration=%.1fs", duration)
	c.notifyUpdate()
}

// onTimeUpdate handles transport position ticks
func (c *Controller) onTimeUpdate(transport Transport, current, duration float64) {
	c.mu.Lock()
	if c.transport != transport {
		c.mu.Unlock()
		return
	}
	c.currentTime = current
	if duration > 0 {
		c.duration = duration
	}
	c.mu.Unlock()
	c.notifyUpdate()
}

// onEnded handles natural end-of-stream
func (c *Controller) onEnded(transport Transport) {
	c.mu.Lock()
	if c.transport != transport {
		c.mu.Unlock()
		return
	}
	c.state = StateEnded
	c.mu.Unlock()
	c.notifyUpdate()
}

// State returns the session state
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Playing reports whether the transport is advancing
func (c *Controller) Playing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == StatePlaying
}

// Open reports whether any session is active
func (c *Controller) Open() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state != StateClosed
}

// Item returns the stored item of the session, or nil for external streams
func (c *Controller) Item() *model.FileItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.item
}

// External reports whether the session plays an external URL
func (c *Controller) External() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.externalURL != ""
}

// SourceURL returns the media URL of the active session
func (c *Controller) SourceURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sourceURL
}

// Category returns the media category driving the preview mode
func (c *Controller) Category() model.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.category
}

// Title returns the display title of the session
func (c *Controller) Title() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.externalURL != "" {
		return ExternalStreamTitle
	}
	if c.item != nil {
		if c.item.Text != "" {
			return c.item.Text
		}
		return UntitledLabel
	}
	return ""
}

// CurrentTime returns the position in seconds
func (c *Controller) CurrentTime() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

// Duration returns the total length in seconds, 0 when unknown
func (c *Controller) Duration() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.duration
}

// Rate returns the playback speed multiplier
func (c *Controller) Rate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate
}

// Muted reports whether audio output is muted
func (c *Controller) Muted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.muted
}

// notifyUpdate calls the update callback if set
func (c *Controller) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

// FormatTime formats seconds as m:ss for the time/duration display
func FormatTime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	total := int(seconds)
	minutes := total / 60
	secs := total % 60
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
