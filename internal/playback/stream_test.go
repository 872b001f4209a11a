package playback

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProbeServer(t *testing.T, duration string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Header().Set("Content-Length", "4096")
		if duration != "" {
			w.Header().Set("X-Content-Duration", duration)
		}
		if r.Method == http.MethodHead {
			return
		}
		w.Write(make([]byte, 1))
	}))
	t.Cleanup(server.Close)
	return server
}

func waitForMetadata(t *testing.T, metadata <-chan float64) float64 {
	t.Helper()
	select {
	case d := <-metadata:
		return d
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for metadata probe")
		return 0
	}
}

func TestStreamTransport_ProbesMetadata(t *testing.T) {
	server := newProbeServer(t, "90.5")

	transport := NewStreamTransport(server.URL, nil)
	defer transport.Close()

	metadata := make(chan float64, 1)
	transport.SetHandlers(Handlers{
		OnMetadataLoaded: func(duration float64) {
			metadata <- duration
		},
	})

	duration := waitForMetadata(t, metadata)
	assert.Equal(t, 90.5, duration)
	assert.Equal(t, 90.5, transport.Duration())
	assert.Equal(t, "audio/mpeg", transport.ContentType())
	assert.Equal(t, int64(4096), transport.ContentLength())
}

func TestStreamTransport_MetadataAfterLateHandlers(t *testing.T) {
	server := newProbeServer(t, "30")

	transport := NewStreamTransport(server.URL, nil)
	defer transport.Close()

	// wait for the probe before registering handlers
	deadline := time.Now().Add(3 * time.Second)
	for transport.Duration() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 30.0, transport.Duration())

	metadata := make(chan float64, 1)
	transport.SetHandlers(Handlers{
		OnMetadataLoaded: func(duration float64) {
			metadata <- duration
		},
	})

	assert.Equal(t, 30.0, waitForMetadata(t, metadata))
}

func TestStreamTransport_UnknownDuration(t *testing.T) {
	server := newProbeServer(t, "")

	transport := NewStreamTransport(server.URL, nil)
	defer transport.Close()

	metadata := make(chan float64, 1)
	transport.SetHandlers(Handlers{
		OnMetadataLoaded: func(duration float64) {
			metadata <- duration
		},
	})

	assert.Equal(t, 0.0, waitForMetadata(t, metadata))
}

func TestStreamTransport_ClockAdvancesWhilePlaying(t *testing.T) {
	server := newProbeServer(t, "600")

	transport := NewStreamTransport(server.URL, nil)
	defer transport.Close()

	ticks := make(chan float64, 64)
	transport.SetHandlers(Handlers{
		OnTimeUpdate: func(current, duration float64) {
			select {
			case ticks <- current:
			default:
			}
		},
	})

	require.True(t, transport.Paused(), "transport starts paused")
	assert.Equal(t, 0.0, transport.CurrentTime())

	transport.Play()
	require.False(t, transport.Paused())

	select {
	case current := <-ticks:
		assert.Greater(t, current, 0.0)
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for a time update")
	}

	transport.Pause()
	assert.True(t, transport.Paused())
}

func TestStreamTransport_SeekAndRate(t *testing.T) {
	server := newProbeServer(t, "100")

	transport := NewStreamTransport(server.URL, nil)
	defer transport.Close()

	metadata := make(chan float64, 1)
	transport.SetHandlers(Handlers{
		OnMetadataLoaded: func(duration float64) { metadata <- duration },
	})
	waitForMetadata(t, metadata)

	transport.Seek(50)
	assert.Equal(t, 50.0, transport.CurrentTime())

	transport.Seek(-10)
	assert.Equal(t, 0.0, transport.CurrentTime())

	transport.Seek(500)
	assert.Equal(t, 100.0, transport.CurrentTime(), "seek clamps to the known duration")

	transport.SetRate(2.0)
	transport.SetRate(0) // ignored, rate must stay positive
	transport.SetMuted(true)
	assert.True(t, transport.Muted())
}

func TestStreamTransport_EndedFiresAtDuration(t *testing.T) {
	server := newProbeServer(t, "0.25")

	transport := NewStreamTransport(server.URL, nil)
	defer transport.Close()

	metadata := make(chan float64, 1)
	ended := make(chan struct{}, 1)
	transport.SetHandlers(Handlers{
		OnMetadataLoaded: func(duration float64) { metadata <- duration },
		OnEnded:          func() { ended <- struct{}{} },
	})
	waitForMetadata(t, metadata)

	transport.SetRate(2.0)
	transport.Play()

	select {
	case <-ended:
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for end-of-stream")
	}

	assert.True(t, transport.Paused(), "ended stream reports paused")
	assert.Equal(t, 0.25, transport.CurrentTime())
}

func TestStreamTransport_CloseIsIdempotent(t *testing.T) {
	server := newProbeServer(t, "10")

	transport := NewStreamTransport(server.URL, nil)
	transport.Close()
	transport.Close()

	transport.Play()
	assert.True(t, transport.Paused(), "closed transport refuses to play")
}

func TestStreamTransportFactory(t *testing.T) {
	server := newProbeServer(t, "10")

	factory := StreamTransportFactory(nil)
	transport, err := factory(server.URL)
	require.NoError(t, err)
	defer transport.Close()

	assert.True(t, transport.Paused())
}
