package orderbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// orderRef locates a resting order's home level without scanning:
// the price keys into the side's tree, the id keys into the bucket.
type orderRef struct {
	price decimal.Decimal
	side  Side
}

// OrderBook owns all resting orders. It performs no matching and no
// internal locking; see the service package for the concurrency
// boundary.
type OrderBook struct {
	Bids *RBTree
	Asks *RBTree

	index map[string]orderRef
}

// NewOrderBook creates a new empty order book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		Bids:  NewRBTree(),
		Asks:  NewRBTree(),
		index: make(map[string]orderRef),
	}
}

// AddOrder copies the order into the bucket for its price on its side,
// creating the level if absent, and records the id in the index.
// Duplicate ids are rejected with ErrDuplicateID rather than
// overwritten.
func (b *OrderBook) AddOrder(o Order) error {
	if err := o.validate(); err != nil {
		return err
	}
	if _, ok := b.index[o.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, o.ID)
	}

	b.sideTree(o.Side).UpsertLevel(o.Price).add(o)
	b.index[o.ID] = orderRef{price: o.Price, side: o.Side}
	return nil
}

// CancelOrder removes the resting order with the given id. It reports
// false, with no state change, when the id is not resting, so a double
// cancel is a no-op returning false.
func (b *OrderBook) CancelOrder(id string) bool {
	ref, ok := b.index[id]
	if !ok {
		return false
	}

	tree := b.sideTree(ref.side)
	if lvl := tree.FindLevel(ref.price); lvl != nil {
		lvl.remove(id)
		if lvl.Empty() {
			tree.DeleteLevel(ref.price)
		}
	}
	delete(b.index, id)
	return true
}

// BestBid returns the highest resting bid price. ok is false when the
// bid side is empty.
func (b *OrderBook) BestBid() (decimal.Decimal, bool) {
	lvl := b.Bids.MaxLevel()
	if lvl == nil {
		return decimal.Decimal{}, false
	}
	return lvl.Price, true
}

// BestAsk returns the lowest resting ask price. ok is false when the
// ask side is empty.
func (b *OrderBook) BestAsk() (decimal.Decimal, bool) {
	lvl := b.Asks.MinLevel()
	if lvl == nil {
		return decimal.Decimal{}, false
	}
	return lvl.Price, true
}

// Spread returns bestAsk - bestBid when both sides are non-empty. The
// book does not prevent crossing, so a negative spread means the
// caller let bids and asks cross.
func (b *OrderBook) Spread() (decimal.Decimal, bool) {
	bid, okBid := b.BestBid()
	ask, okAsk := b.BestAsk()
	if !okBid || !okAsk {
		return decimal.Decimal{}, false
	}
	return ask.Sub(bid), true
}

// Order returns a copy of the resting order with the given id.
func (b *OrderBook) Order(id string) (Order, bool) {
	ref, ok := b.index[id]
	if !ok {
		return Order{}, false
	}
	lvl := b.sideTree(ref.side).FindLevel(ref.price)
	if lvl == nil {
		return Order{}, false
	}
	return lvl.Get(id)
}

// Len is the number of resting orders across both sides.
func (b *OrderBook) Len() int {
	return len(b.index)
}

// ---- traversal helpers ----

// BidsWalk visits bid levels best-first (descending price).
func (b *OrderBook) BidsWalk(fn func(*PriceLevel) bool) {
	b.Bids.ForEachDescending(fn)
}

// AsksWalk visits ask levels best-first (ascending price).
func (b *OrderBook) AsksWalk(fn func(*PriceLevel) bool) {
	b.Asks.ForEachAscending(fn)
}

func (b *OrderBook) sideTree(s Side) *RBTree {
	if s == Buy {
		return b.Bids
	}
	return b.Asks
}
