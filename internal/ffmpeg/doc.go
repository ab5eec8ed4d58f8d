// Package ffmpeg assembles operation graphs and renders and executes them as
// ffmpeg commands.
//
// The split mirrors the rest of the pipeline: [Assemble] and [AssembleConcat]
// are pure constructors turning derived parameters and source descriptors
// into an ordered [Graph] of filter and encode nodes; [Build] renders a graph
// into the complete argument vector; [Execute] is the single place that
// touches the external engine, capturing stderr so failures carry the
// engine's diagnostics verbatim. There is no retry logic anywhere: a failed
// run is reported, never masked.
package ffmpeg
