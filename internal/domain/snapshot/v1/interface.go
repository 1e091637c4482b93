package snapshotv1

import "context"

// Store persists and retrieves per-instrument book snapshots.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=snapshotv1_mock
type Store interface {
	// Store persists a snapshot, replacing any previous one for the symbol.
	Store(ctx context.Context, snapshot *Snapshot) error
	// Load returns the latest snapshot for the symbol, or nil when none
	// has been stored yet.
	Load(ctx context.Context, symbol string) (*Snapshot, error)
}
