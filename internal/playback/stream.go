package playback

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Stream transport timing
const (
	tickInterval = 250 * time.Millisecond
)

// Duration headers checked during the metadata probe, in order
var durationHeaders = []string{"X-Content-Duration", "Content-Duration"}

// StreamTransport is a headless HTTP-backed transport. It probes the source
// for metadata and advances a wall-clock position scaled by the playback rate
// while playing. Frame rendering is delegated to the host; this transport
// models time, not decoding.
type StreamTransport struct {
	url        string
	httpClient *http.Client

	mu          sync.Mutex
	handlers    Handlers
	probed      bool
	paused      bool
	muted       bool
	rate        float64
	position    float64
	duration    float64
	contentType string
	contentLen  int64
	closed      bool

	stop chan struct{}
}

// NewStreamTransport creates a transport for the given source URL and starts
// the metadata probe. A nil httpClient falls back to http.DefaultClient.
func NewStreamTransport(url string, httpClient *http.Client) *StreamTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	t := &StreamTransport{
		url:        url,
		httpClient: httpClient,
		paused:     true,
		rate:       DefaultRate,
		stop:       make(chan struct{}),
	}

	go t.probe()
	go t.run()
	return t
}

// StreamTransportFactory adapts NewStreamTransport to the TransportFactory
// signature, sharing one HTTP client across sessions.
func StreamTransportFactory(httpClient *http.Client) TransportFactory {
	return func(sourceURL string) (Transport, error) {
		return NewStreamTransport(sourceURL, httpClient), nil
	}
}

// probe resolves source metadata with a HEAD request, falling back to a
// ranged GET for servers that reject HEAD. The transport stays usable when
// the probe fails; duration just remains unknown.
func (t *StreamTransport) probe() {
	resp, err := t.doProbe(http.MethodHead)
	if err != nil || resp.StatusCode >= 400 {
		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		resp, err = t.doProbe(http.MethodGet)
	}

	var contentType string
	var contentLen int64
	var duration float64

	if err != nil {
		log.Printf("Stream probe failed for %s: %v", t.url, err)
	} else {
		contentType = resp.Header.Get("Content-Type")
		contentLen, _ = strconv.ParseInt(resp.Header.Get("Content-Length"), 10, 64)
		for _, header := range durationHeaders {
			if v := resp.Header.Get(header); v != "" {
				if parsed, perr := strconv.ParseFloat(v, 64); perr == nil && parsed > 0 {
					duration = parsed
					break
				}
			}
		}
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1))
		resp.Body.Close()
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.probed = true
	t.contentType = contentType
	t.contentLen = contentLen
	t.duration = duration
	onLoaded := t.handlers.OnMetadataLoaded
	t.mu.Unlock()

	if onLoaded != nil {
		onLoaded(duration)
	}
}

func (t *StreamTransport) doProbe(method string) (*http.Response, error) {
	req, err := http.NewRequest(method, t.url, nil)
	if err != nil {
		return nil, err
	}
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}
	return t.httpClient.Do(req)
}

// run drives the playback clock until Close
func (t *StreamTransport) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.tick(tickInterval.Seconds())
		}
	}
}

// tick advances the position by one interval scaled by rate
func (t *StreamTransport) tick(elapsed float64) {
	t.mu.Lock()
	if t.closed || t.paused {
		t.mu.Unlock()
		return
	}

	t.position += elapsed * t.rate

	ended := false
	if t.duration > 0 && t.position >= t.duration {
		t.position = t.duration
		t.paused = true
		ended = true
	}

	position, duration := t.position, t.duration
	onTime := t.handlers.OnTimeUpdate
	onEnded := t.handlers.OnEnded
	t.mu.Unlock()

	if onTime != nil {
		onTime(position, duration)
	}
	if ended && onEnded != nil {
		onEnded()
	}
}

// SetHandlers registers progress callbacks. A probe that finished before
// registration reports its metadata immediately.
func (t *StreamTransport) SetHandlers(h Handlers) {
	t.mu.Lock()
	t.handlers = h
	alreadyProbed := t.probed
	duration := t.duration
	t.mu.Unlock()

	if alreadyProbed && h.OnMetadataLoaded != nil {
		h.OnMetadataLoaded(duration)
	}
}

// Play resumes the clock
func (t *StreamTransport) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	// replaying a finished stream restarts from the beginning
	if t.duration > 0 && t.position >= t.duration {
		t.position = 0
	}
	t.paused = false
}

// Pause suspends the clock, keeping the position
func (t *StreamTransport) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paused = true
}

// Paused reports the paused flag
func (t *StreamTransport) Paused() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.paused
}

// Seek moves the position, clamped to the known duration
func (t *StreamTransport) Seek(seconds float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	if t.duration > 0 && seconds > t.duration {
		seconds = t.duration
	}
	t.position = seconds
}

// SetRate applies a playback speed multiplier to the clock
func (t *StreamTransport) SetRate(rate float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rate > 0 {
		t.rate = rate
	}
}

// SetMuted toggles the muted flag
func (t *StreamTransport) SetMuted(muted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.muted = muted
}

// Muted reports the muted flag
func (t *StreamTransport) Muted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.muted
}

// CurrentTime returns the clock position in seconds
func (t *StreamTransport) CurrentTime() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.position
}

// Duration returns the probed duration in seconds, 0 when unknown
func (t *StreamTransport) Duration() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duration
}

// ContentType returns the probed MIME type, empty until the probe resolves
func (t *StreamTransport) ContentType() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.contentType
}

// ContentLength returns the probed size in bytes, 0 when unknown
func (t *StreamTransport) ContentLength() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.contentLen
}

// Close stops the clock and drops the handlers. Safe to call twice.
func (t *StreamTransport) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	t.paused = true
	t.handlers = Handlers{}
	t.mu.Unlock()
	close(t.stop)
}
