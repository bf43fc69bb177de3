// Package orderbook implements an in-memory limit order book. It
// maintains two red-black trees of price levels for the bid and ask
// sides plus an id index, so best-price queries and cancellation by
// order id both run in O(log n) without scanning resting orders.
//
// The book is a passive bookkeeping structure: it does not match
// crossing orders and holds no resources beyond process memory. It is
// single-writer by design; concurrent callers go through the service
// layer, which serializes all four operations behind one lock.
package orderbook
