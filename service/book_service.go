package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"limitbook/domain/orderbook"
)

// Quote is a consistent top-of-book snapshot: all three values are
// taken under one read lock.
type Quote struct {
	Bid    decimal.Decimal
	Ask    decimal.Decimal
	Spread decimal.Decimal
}

// LevelInfo is one aggregated price level in a depth view.
type LevelInfo struct {
	Price  decimal.Decimal
	Qty    int64
	Orders int
}

// Depth is a best-first view of the top levels per side: bids
// descending, asks ascending.
type Depth struct {
	Bids []LevelInfo
	Asks []LevelInfo
}

// BookService is the only concurrency-safe entry point to an order
// book instance.
type BookService struct {
	mu   sync.RWMutex
	book *orderbook.OrderBook
}

func NewBookService(book *orderbook.OrderBook) *BookService {
	return &BookService{book: book}
}

//
// ---- commands ----
//

// Submit places a new order with a service-assigned id and returns
// that id.
func (s *BookService) Submit(side orderbook.Side, price decimal.Decimal, qty int64) (string, error) {
	id := uuid.NewString()
	if err := s.Add(orderbook.Order{ID: id, Price: price, Qty: qty, Side: side}); err != nil {
		return "", err
	}
	return id, nil
}

// Add places an order with a caller-supplied id.
func (s *BookService) Add(o orderbook.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.book.AddOrder(o); err != nil {
		log.WithError(err).WithField("id", o.ID).Warn("order rejected")
		return err
	}
	log.WithFields(log.Fields{
		"id":    o.ID,
		"side":  o.Side.String(),
		"price": o.Price,
		"qty":   o.Qty,
	}).Debug("order resting")
	return nil
}

// Cancel removes a resting order by id, reporting whether it was
// found.
func (s *BookService) Cancel(id string) bool {
	s.mu.Lock()
	ok := s.book.CancelOrder(id)
	s.mu.Unlock()

	log.WithFields(log.Fields{"id": id, "found": ok}).Debug("cancel")
	return ok
}

//
// ---- queries ----
//

func (s *BookService) BestBid() (decimal.Decimal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.BestBid()
}

func (s *BookService) BestAsk() (decimal.Decimal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.BestAsk()
}

// Quote returns bid, ask, and spread together. ok is false unless
// both sides are non-empty.
func (s *BookService) Quote() (Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, okBid := s.book.BestBid()
	ask, okAsk := s.book.BestAsk()
	if !okBid || !okAsk {
		return Quote{}, false
	}
	return Quote{Bid: bid, Ask: ask, Spread: ask.Sub(bid)}, true
}

// Len is the number of resting orders.
func (s *BookService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.book.Len()
}

// Depth returns up to levels aggregated price levels per side,
// best-first. levels <= 0 means all levels.
func (s *BookService) Depth(levels int) Depth {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dep Depth
	collect := func(out *[]LevelInfo) func(*orderbook.PriceLevel) bool {
		return func(lvl *orderbook.PriceLevel) bool {
			*out = append(*out, LevelInfo{
				Price:  lvl.Price,
				Qty:    lvl.TotalQty,
				Orders: lvl.Len(),
			})
			return levels <= 0 || len(*out) < levels
		}
	}
	s.book.BidsWalk(collect(&dep.Bids))
	s.book.AsksWalk(collect(&dep.Asks))
	return dep
}
