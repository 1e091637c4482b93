package snapshotv1

// BookOrder is one resting order in persisted form. Decimal fields travel as
// strings so restores reproduce the exact values the book held.
type BookOrder struct {
	OrderID   string `json:"orderID"`
	Side      string `json:"side"`
	Type      string `json:"type"`
	Price     string `json:"price"`
	Qty       string `json:"qty"`
	Filled    string `json:"filled"`
	Sequence  uint64 `json:"sequence"`
	Timestamp int64  `json:"timestamp"`
}

// Snapshot captures one instrument's book plus the intake offset it was
// consistent with. Restoring it and replaying from OrderOffset reproduces
// the live book.
type Snapshot struct {
	Symbol      string      `json:"symbol"`
	Sequence    uint64      `json:"sequence"`
	OrderOffset int64       `json:"orderOffset"`
	Timestamp   int64       `json:"timestamp"`
	Orders      []BookOrder `json:"orders"`
}
