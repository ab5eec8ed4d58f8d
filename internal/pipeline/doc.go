// Package pipeline orchestrates the probe → derive → assemble → execute
// flow for both operations. It owns the only side effects around the core:
// logging, output cleanup on failure, and the size-ratio report.
package pipeline
