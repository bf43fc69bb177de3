package orderbook

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRBTreeInsertFindDelete(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(d("100"))
	if pl1 == nil {
		t.Fatal("UpsertLevel failed")
	}
	if pl2 := tree.FindLevel(d("100")); pl2 != pl1 {
		t.Error("FindLevel did not return same PriceLevel")
	}

	tree.UpsertLevel(d("200"))
	if !tree.MinLevel().Price.Equal(d("100")) {
		t.Error("expected min=100")
	}
	if !tree.MaxLevel().Price.Equal(d("200")) {
		t.Error("expected max=200")
	}

	if !tree.DeleteLevel(d("100")) {
		t.Error("DeleteLevel failed")
	}
	if tree.FindLevel(d("100")) != nil {
		t.Error("expected level 100 to be gone")
	}
}

func TestDeleteNonExistentLevel(t *testing.T) {
	tree := NewRBTree()
	if tree.DeleteLevel(d("123")) {
		t.Error("expected false when deleting non-existent level")
	}
}

func TestEmptyTreeMinMax(t *testing.T) {
	tree := NewRBTree()
	if tree.MinLevel() != nil || tree.MaxLevel() != nil {
		t.Error("expected nil for min/max on empty tree")
	}
}

func TestUpsertDuplicateLevel(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(d("150"))
	pl2 := tree.UpsertLevel(d("150"))
	if pl1 != pl2 {
		t.Error("Upsert should return the same level for a duplicate price")
	}
	if tree.Size() != 1 {
		t.Errorf("expected size 1, got %d", tree.Size())
	}
}

// Decimal keys must compare by numeric value, not representation:
// 100.5 and 100.50 are the same level.
func TestDecimalKeyEquivalence(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(d("100.5"))
	pl2 := tree.UpsertLevel(d("100.50"))
	if pl1 != pl2 {
		t.Error("100.5 and 100.50 should resolve to the same level")
	}
}

func TestRandomInsertDeleteKeepsOrder(t *testing.T) {
	tree := NewRBTree()
	rng := rand.New(rand.NewSource(42))

	seen := make(map[int64]bool)
	var prices []int64
	for i := 0; i < 500; i++ {
		p := int64(rng.Intn(2000) + 1)
		if !seen[p] {
			seen[p] = true
			prices = append(prices, p)
		}
		tree.UpsertLevel(decimal.NewFromInt(p))
	}
	if tree.Size() != len(prices) {
		t.Fatalf("size %d != distinct prices %d", tree.Size(), len(prices))
	}

	// Deterministic churn: delete every other price in ascending
	// order, so the delete fixup runs the same rebalancing sequence
	// on every run.
	sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
	var remaining []int64
	for i, p := range prices {
		if i%2 == 0 {
			if !tree.DeleteLevel(decimal.NewFromInt(p)) {
				t.Fatalf("delete of present price %d failed", p)
			}
		} else {
			remaining = append(remaining, p)
		}
	}
	if tree.Size() != len(remaining) {
		t.Fatalf("size %d != remaining prices %d", tree.Size(), len(remaining))
	}

	var walked []decimal.Decimal
	tree.ForEachAscending(func(pl *PriceLevel) bool {
		walked = append(walked, pl.Price)
		return true
	})
	if len(walked) != len(remaining) {
		t.Fatalf("walked %d levels, expected %d", len(walked), len(remaining))
	}
	for i, p := range walked {
		if !p.Equal(decimal.NewFromInt(remaining[i])) {
			t.Fatalf("ascending walk mismatch at %d: got %s, want %d", i, p, remaining[i])
		}
	}

	var walkedDesc []decimal.Decimal
	tree.ForEachDescending(func(pl *PriceLevel) bool {
		walkedDesc = append(walkedDesc, pl.Price)
		return true
	})
	for i := 1; i < len(walkedDesc); i++ {
		if !walkedDesc[i].LessThan(walkedDesc[i-1]) {
			t.Fatalf("descending walk out of order at %d", i)
		}
	}

	// Drain the rest highest-first so deletions arrive from the right
	// side too and both mirrored fixup branches are exercised.
	for i := len(remaining) - 1; i >= 0; i-- {
		if !tree.DeleteLevel(decimal.NewFromInt(remaining[i])) {
			t.Fatalf("drain delete of price %d failed", remaining[i])
		}
	}
	if tree.Size() != 0 {
		t.Fatalf("expected empty tree after drain, size %d", tree.Size())
	}
	if tree.MinLevel() != nil || tree.MaxLevel() != nil {
		t.Error("drained tree should have no min/max")
	}
}

func TestForEachEarlyStop(t *testing.T) {
	tree := NewRBTree()
	for i := 1; i <= 10; i++ {
		tree.UpsertLevel(decimal.NewFromInt(int64(i)))
	}
	visited := 0
	tree.ForEachAscending(func(pl *PriceLevel) bool {
		visited++
		return visited < 3
	})
	if visited != 3 {
		t.Errorf("expected walk to stop after 3 levels, visited %d", visited)
	}
}
