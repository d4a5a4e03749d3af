package reservation

// Status of a reservation through its approval lifecycle.
//
//	pending ─┬─> approved
//	         └─> rejected
//
// pending_payment is the initial state of the payment-method variant; the
// payment flow, not the lifecycle controller, advances it.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPendingPayment Status = "pending_payment"
	StatusApproved       Status = "approved"
	StatusRejected       Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPendingPayment, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

var allowedTransitions = map[Status][]Status{
	StatusPending:        {StatusApproved, StatusRejected},
	StatusPendingPayment: {}, // advanced by the payment flow, not by operators
}

// CanTransition reports whether from -> to is a legal move. A self transition
// is legal so repeated identical operator decisions stay idempotent.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	if from.IsTerminal() {
		return false
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Decision is the operator action on a pending reservation.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// TargetStatus maps the decision to the status it drives the reservation to.
func (d Decision) TargetStatus() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// PaymentStatus of the payment record created in the payment-method variant.
// It moves independently of the reservation status.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)
