package config

import "time"

// Options configures a single Engine instance: the R-tree's fan-out, the
// orchestrator's rebuild cadence, and the reader/writer lock timeouts
// shared by the spatial index and the traversal graph.
type Options struct {
	// SegmentWidthMultiplier sets the top-face split target length, in
	// multiples of the agent's width. Valid range [1,10].
	SegmentWidthMultiplier float64

	// GraphUpdateInterval is the minimum accumulated game time, in
	// seconds (the sum of the dt values passed to Tick), between graph
	// maintenance ticks.
	GraphUpdateInterval float64

	// FullGraphRebuild, when true, makes every maintenance tick perform
	// a full RebuildAll instead of an incremental Refresh.
	FullGraphRebuild bool

	// LayerMask and TagFilter are passed through to the scene provider
	// unexamined; the orchestrator treats them as opaque enumeration
	// filters.
	LayerMask int
	TagFilter string

	// RTreeMaxEntries and RTreeMinEntries bound node fan-out in the
	// spatial index. RTreeMinEntries defaults to
	// max(2, floor(0.4*RTreeMaxEntries)) when zero.
	RTreeMaxEntries int
	RTreeMinEntries int

	// ReaderTimeout and WriterTimeout bound how long a lock acquisition
	// on the R-tree or traversal graph may block before giving up and
	// returning a benign default.
	ReaderTimeout time.Duration
	WriterTimeout time.Duration
}

// Default returns the engine's default configuration: a segment width
// multiplier of 5, a 0.25s graph update interval, incremental refresh,
// R-tree fan-out of [2,5] (MinEntries 2, MaxEntries 5), and the spec's 10ms/20ms lock timeouts.
func Default() Options {
	return Options{
		SegmentWidthMultiplier: 5,
		GraphUpdateInterval:    0.25,
		FullGraphRebuild:       false,
		RTreeMaxEntries:        5,
		RTreeMinEntries:        2,
		ReaderTimeout:          10 * time.Millisecond,
		WriterTimeout:          20 * time.Millisecond,
	}
}

// Normalized returns a copy of o with zero-valued or out-of-range
// fields replaced by their defaults.
func (o Options) Normalized() Options {
	out := o
	if out.SegmentWidthMultiplier < 1 || out.SegmentWidthMultiplier > 10 {
		out.SegmentWidthMultiplier = 5
	}
	if out.GraphUpdateInterval <= 0 {
		out.GraphUpdateInterval = 0.25
	}
	if out.RTreeMaxEntries < 3 {
		out.RTreeMaxEntries = 5
	}
	minEntries := int(0.4 * float64(out.RTreeMaxEntries))
	if minEntries < 2 {
		minEntries = 2
	}
	if out.RTreeMinEntries <= 0 || out.RTreeMinEntries > out.RTreeMaxEntries/2 {
		out.RTreeMinEntries = minEntries
	}
	if out.ReaderTimeout <= 0 {
		out.ReaderTimeout = 10 * time.Millisecond
	}
	if out.WriterTimeout <= 0 {
		out.WriterTimeout = 20 * time.Millisecond
	}
	return out
}
