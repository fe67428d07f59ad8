package enum

// ── Order lifecycle (mixed-case literals kept for template/db compatibility) ──

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "Completed"
	OrderStatusPaid      = "Paid"
	OrderStatusCredit    = "Credit"
)

const (
	PaymentModeUnpaid = "Unpaid"
)

// ── Service types offered on the quotation page ──

const (
	ServiceSticker      = "sticker"
	ServiceDTF          = "dtf"
	ServiceBanner       = "banner"
	ServiceTransparent  = "transparent"
	ServiceOneWayVision = "onewayvision"
)

// ── Dimension units and DTF sheet sizes ──

const (
	UnitFeet   = "ft"
	UnitInches = "in"
)

const (
	DTFSizeA4 = "A4"
	DTFSizeA3 = "A3"
)

// IsSettlementStatus reports whether s is a status an order can be
// settled to via the payment-status endpoint.
func IsSettlementStatus(s string) bool {
	return s == OrderStatusPaid || s == OrderStatusCredit
}

// IsCompletedStatus reports whether s counts as "completed" in the
// completed-orders and dashboard views.
func IsCompletedStatus(s string) bool {
	switch s {
	case OrderStatusCompleted, OrderStatusPaid, OrderStatusCredit:
		return true
	}
	return false
}
