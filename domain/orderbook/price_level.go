package orderbook

import "github.com/shopspring/decimal"

// PriceLevel is the bucket of all resting orders at a single price,
// keyed by order id. No ordering among same-price orders is
// maintained; consumers needing price-time priority must layer a
// sequence field on top.
type PriceLevel struct {
	Price decimal.Decimal

	orders   map[string]Order
	TotalQty int64
}

func newPriceLevel(price decimal.Decimal) *PriceLevel {
	return &PriceLevel{
		Price:  price,
		orders: make(map[string]Order),
	}
}

func (p *PriceLevel) add(o Order) {
	p.orders[o.ID] = o
	p.TotalQty += o.Qty
}

func (p *PriceLevel) remove(id string) (Order, bool) {
	o, ok := p.orders[id]
	if !ok {
		return Order{}, false
	}
	delete(p.orders, id)
	p.TotalQty -= o.Qty
	return o, true
}

func (p *PriceLevel) Empty() bool {
	return len(p.orders) == 0
}

func (p *PriceLevel) Len() int {
	return len(p.orders)
}

// Get returns a copy of the resting order with the given id, if any.
func (p *PriceLevel) Get(id string) (Order, bool) {
	o, ok := p.orders[id]
	return o, ok
}
