package playback

// Package playback implements the media preview session: a single active
// playback target (a stored item or an external stream URL) and the
// play/pause, seek, rate, and mute state of the transport behind it. The
// transport is abstracted behind an interface so any decoder that can report
// time and duration can back a session.
