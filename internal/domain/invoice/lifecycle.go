package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// State is the payment state an update operates on.
type State struct {
	Amount   decimal.Decimal
	Paid     bool
	PaidDate *time.Time
}

// Transition computes the next payment state from the current one and a
// requested amount. Pure function; persistence happens elsewhere.
//
// A nil requested amount expresses "mark unpaid" intent; a non-zero one
// "mark paid with this amount". The paid flag flips only when the
// truthiness of the request disagrees with the current flag:
//
//   - unpaid + non-zero amount: paid, paid date stamped with now
//   - paid + absent or zero amount: unpaid, paid date cleared
//   - otherwise: paid and paid date carried over unchanged
//
// An explicit zero amount reads as falsy and unmarks a paid invoice.
// That mirrors the established contract; do not replace it with a nil
// check without a behavior review.
//
// The amount is persisted as requested whenever one is supplied,
// including zero. An absent amount carries the current amount forward.
func Transition(current State, requested *decimal.Decimal, now time.Time) State {
	next := current
	if requested != nil {
		next.Amount = *requested
	}

	truthy := requested != nil && !requested.IsZero()

	switch {
	case !current.Paid && truthy:
		next.Paid = true
		next.PaidDate = &now
	case current.Paid && !truthy:
		next.Paid = false
		next.PaidDate = nil
	}

	return next
}
