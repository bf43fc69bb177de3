package orderbook

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

var (
	// ErrInvalidOrder rejects orders with an empty id or a
	// non-positive price or quantity.
	ErrInvalidOrder = errors.New("orderbook: invalid order")

	// ErrDuplicateID rejects an insert whose id is already resting.
	// The book never silently overwrites a resting order.
	ErrDuplicateID = errors.New("orderbook: duplicate order id")
)

// Order is a resting order. The book stores its own copy on insert;
// there is no update-in-place, so modifying a resting order means
// cancel then re-add.
type Order struct {
	ID    string
	Price decimal.Decimal
	Qty   int64
	Side  Side
}

func (o Order) validate() error {
	if o.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidOrder)
	}
	if !o.Price.IsPositive() {
		return fmt.Errorf("%w: price %s not positive", ErrInvalidOrder, o.Price)
	}
	if o.Qty <= 0 {
		return fmt.Errorf("%w: qty %d not positive", ErrInvalidOrder, o.Qty)
	}
	return nil
}
