// Package probe provides ffprobe-based media inspection. A single JSON call
// per file yields the distilled [StreamInfo] the parameter deriver consumes:
// stream presence, resolution, frame rate, and duration.
//
// Frame-rate extraction prefers the stream's r_frame_rate field and falls
// back to avg_frame_rate when the former is absent, empty, or "0/0". A
// selected fraction that is malformed or has a zero denominator is a probe
// failure, not a silent unknown.
//
// Probing is a single read-only query with no retries. Callers that probe a
// batch recover per-file failures by filtering; see the pipeline package.
package probe
