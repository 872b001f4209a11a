package playback

// Handlers are the callbacks a transport fires as playback progresses. Any
// handler may be nil. Transports invoke handlers from their own goroutines;
// receivers are responsible for marshalling onto the UI thread.
type Handlers struct {
	// OnMetadataLoaded fires once the source's metadata is resolved.
	// Duration is in seconds, 0 when the source does not report one.
	OnMetadataLoaded func(duration float64)

	// OnTimeUpdate fires periodically while the position advances.
	OnTimeUpdate func(current, duration float64)

	// OnEnded fires when playback reaches the end of the stream.
	OnEnded func()
}

// Transport is the play/pause/seek-capable resource backing a session.
type Transport interface {
	// Play starts or resumes playback.
	Play()

	// Pause suspends playback, keeping the position.
	Pause()

	// Paused reports the transport's actual paused flag.
	Paused() bool

	// Seek moves the position to the given offset in seconds.
	Seek(seconds float64)

	// SetRate applies a playback speed multiplier.
	SetRate(rate float64)

	// SetMuted toggles audio output.
	SetMuted(muted bool)

	// CurrentTime returns the position in seconds.
	CurrentTime() float64

	// Duration returns the total length in seconds, 0 when unknown.
	Duration() float64

	// SetHandlers registers the progress callbacks. If metadata is already
	// resolved when handlers are registered, OnMetadataLoaded fires
	// immediately.
	SetHandlers(h Handlers)

	// Close releases the transport. No handler fires after Close returns.
	Close()
}

// TransportFactory builds a transport for a media source URL.
type TransportFactory func(sourceURL string) (Transport, error)
