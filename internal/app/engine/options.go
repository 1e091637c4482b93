package engine

import "time"

// Options represents configuration options for the Engine.
type Options struct {
	// SnapshotInterval is how often the snapshot manager wakes up.
	SnapshotInterval time.Duration
	// SnapshotOffsetDelta is the minimum number of processed intake
	// messages between two snapshots.
	SnapshotOffsetDelta int64
	// DepthLevels is the default number of levels returned by Depth.
	DepthLevels int
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		SnapshotInterval:    30 * time.Second,
		SnapshotOffsetDelta: 1000,
		DepthLevels:         10,
	}
}
