// Package planner derives encoder parameters from probed stream metadata and
// the user's 1-10 reduction level. [Derive] is a pure function: the same
// (StreamInfo, Level) pair always yields the same [EncodeParams].
//
// The level-to-parameter mapping is the behavioral contract of the whole
// tool. CRF is the only interpolated value; scale percentage and audio
// bitrate are piecewise-constant tiers kept as ordered boundary tables in
// tiers.go so they can be audited and tested in isolation.
package planner
