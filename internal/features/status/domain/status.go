package domain

// OrderStatus is the lifecycle state of a payment order as reported by the gateway.
type OrderStatus string

const (
	// OrderStatusCompleted indicates the payment was completed.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusInProgress indicates the consumer has not finished paying yet.
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	// OrderStatusCancelled indicates the consumer or merchant cancelled the order.
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusExpired indicates the order was not paid in time.
	OrderStatusExpired OrderStatus = "EXPIRED"
)

// Field names read from a status document.
const (
	FieldOrderResults = "orderResults"
	FieldOrderStatus  = "orderStatus"
)

// StatusDocument is a decoded status response, kept as a generic JSON object.
type StatusDocument map[string]interface{}

// OrderStatus returns orderResults.orderStatus, or a *ShapeError when the path
// is missing or has the wrong type.
func (d StatusDocument) OrderStatus() (OrderStatus, error) {
	raw, ok := d[FieldOrderResults]
	if !ok {
		return "", &ShapeError{Path: FieldOrderResults, Reason: "missing"}
	}

	results, ok := raw.(map[string]interface{})
	if !ok {
		return "", &ShapeError{Path: FieldOrderResults, Reason: "not an object"}
	}

	path := FieldOrderResults + "." + FieldOrderStatus

	rawStatus, ok := results[FieldOrderStatus]
	if !ok {
		return "", &ShapeError{Path: path, Reason: "missing"}
	}

	status, ok := rawStatus.(string)
	if !ok {
		return "", &ShapeError{Path: path, Reason: "not a string"}
	}

	return OrderStatus(status), nil
}

// StatusResult is what the HTTP surface reports for a single check.
type StatusResult struct {
	// OrderStatus is the raw status string returned by the gateway.
	OrderStatus OrderStatus `json:"order_status"`
	// Completed is true only when OrderStatus is exactly COMPLETED.
	Completed bool `json:"completed"`
}
