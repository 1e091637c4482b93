package orderreaderv1

// PlaceOrderPayload is the wire format of an order submission consumed from
// the intake topic. Quantity and price are decimal strings so no precision
// is lost in transit; Price is empty for market orders.
type PlaceOrderPayload struct {
	OrderID string `json:"orderID"`
	Symbol  string `json:"symbol"`
	Type    string `json:"type"`
	Side    string `json:"side"`
	Qty     string `json:"qty"`
	Price   string `json:"price,omitempty"`
}

// CancelOrderPayload asks the engine to remove a resting order.
type CancelOrderPayload struct {
	OrderID string `json:"orderID"`
}
