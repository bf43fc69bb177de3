package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"limitbook/config"
	"limitbook/domain/orderbook"
	"limitbook/jobs/quotelog"
	"limitbook/service"
)

func main() {
	configureLog(config.Env.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---------------- Domain ----------------

	book := orderbook.NewOrderBook()
	svc := service.NewBookService(book)

	// ---------------- Background Jobs ----------------

	ql := quotelog.New(svc, config.Env.QuoteLogInterval)
	go ql.Run(ctx)

	// ---------------- Demo ----------------

	fmt.Println("=== Order Book Demo ===")
	fmt.Println()

	fmt.Println("Initial state (empty order book):")
	printBestPrices(svc)

	fmt.Println("Adding buy orders...")
	mustAdd(svc, "B1", "100.50", 10, orderbook.Buy)
	mustAdd(svc, "B2", "100.25", 5, orderbook.Buy)
	mustAdd(svc, "B3", "100.75", 15, orderbook.Buy)
	printBestPrices(svc)

	fmt.Println("Adding sell orders...")
	mustAdd(svc, "S1", "101.00", 10, orderbook.Sell)
	mustAdd(svc, "S2", "101.25", 5, orderbook.Sell)
	mustAdd(svc, "S3", "100.90", 20, orderbook.Sell)
	printBestPrices(svc)

	fmt.Println("Canceling best bid order (B3)...")
	svc.Cancel("B3")
	printBestPrices(svc)

	fmt.Println("Canceling best ask order (S3)...")
	svc.Cancel("S3")
	printBestPrices(svc)

	if n := config.Env.DemoRandomOrders; n > 0 {
		fmt.Printf("Seeding %d random orders...\n", n)
		seedRandom(svc, n)
		printDepth(svc, 5)
	}

	fmt.Println("=== Demo Complete ===")
}

func mustAdd(svc *service.BookService, id, price string, qty int64, side orderbook.Side) {
	o := orderbook.Order{
		ID:    id,
		Price: decimal.RequireFromString(price),
		Qty:   qty,
		Side:  side,
	}
	if err := svc.Add(o); err != nil {
		log.Fatalf("add %s failed: %v", id, err)
	}
}

// seedRandom submits service-assigned-id orders around the resting
// mid, bids below and asks above so the book stays uncrossed.
func seedRandom(svc *service.BookService, n int) {
	for i := 0; i < n; i++ {
		side := orderbook.Buy
		cents := int64(10000 - rand.Intn(100))
		if i%2 == 1 {
			side = orderbook.Sell
			cents = int64(10150 + rand.Intn(100))
		}
		qty := int64(rand.Intn(50) + 1)
		if _, err := svc.Submit(side, decimal.New(cents, -2), qty); err != nil {
			log.Fatalf("submit failed: %v", err)
		}
	}
}

func printBestPrices(svc *service.BookService) {
	bid, okBid := svc.BestBid()
	ask, okAsk := svc.BestAsk()

	fmt.Print("Best Bid: ")
	if okBid {
		fmt.Printf("$%s", bid.StringFixed(2))
	} else {
		fmt.Print("N/A")
	}
	fmt.Println()

	fmt.Print("Best Ask: ")
	if okAsk {
		fmt.Printf("$%s", ask.StringFixed(2))
	} else {
		fmt.Print("N/A")
	}
	fmt.Println()

	if q, ok := svc.Quote(); ok {
		fmt.Printf("Spread: $%s\n", q.Spread.StringFixed(2))
	}
	fmt.Println()
}

func printDepth(svc *service.BookService, levels int) {
	dep := svc.Depth(levels)

	fmt.Printf("Top %d bid levels:\n", levels)
	for _, lvl := range dep.Bids {
		fmt.Printf("  $%s  qty=%d  orders=%d\n", lvl.Price.StringFixed(2), lvl.Qty, lvl.Orders)
	}
	fmt.Printf("Top %d ask levels:\n", levels)
	for _, lvl := range dep.Asks {
		fmt.Printf("  $%s  qty=%d  orders=%d\n", lvl.Price.StringFixed(2), lvl.Qty, lvl.Orders)
	}
	fmt.Println()
}

func configureLog(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
