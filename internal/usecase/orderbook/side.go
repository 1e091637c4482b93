package orderbook

import (
	"sort"

	orderbookv1 "github.com/ananyaprabhakarm/Matching-Engine/internal/domain/orderbook/v1"
	"github.com/shopspring/decimal"
)

// bookSide holds one side's price levels sorted best-first: bids descending,
// asks ascending. The slice and the byPrice map always reference the same
// set of levels; empty levels are pruned immediately so levels[0] is always
// the side's true best.
type bookSide struct {
	side    orderbookv1.Side
	levels  []*orderbookv1.PriceLevel
	byPrice map[string]*orderbookv1.PriceLevel
}

func newBookSide(side orderbookv1.Side) *bookSide {
	return &bookSide{
		side:    side,
		byPrice: make(map[string]*orderbookv1.PriceLevel),
	}
}

// betterThan reports whether price a takes priority over price b on this side.
func (s *bookSide) betterThan(a, b decimal.Decimal) bool {
	if s.side == orderbookv1.SideBuy {
		return a.GreaterThan(b)
	}
	return a.LessThan(b)
}

// insertionIndex returns where a level at price belongs in the sorted slice.
func (s *bookSide) insertionIndex(price decimal.Decimal) int {
	return sort.Search(len(s.levels), func(i int) bool {
		return !s.betterThan(s.levels[i].Price, price)
	})
}

// insert appends the order to its price level, creating the level at its
// sorted position if this is the first order at that price.
func (s *bookSide) insert(order *orderbookv1.Order) error {
	key := order.Price.String()
	level, ok := s.byPrice[key]
	if !ok {
		level = orderbookv1.NewPriceLevel(order.Price)
		i := s.insertionIndex(order.Price)
		s.levels = append(s.levels, nil)
		copy(s.levels[i+1:], s.levels[i:])
		s.levels[i] = level
		s.byPrice[key] = level
	}
	if err := level.Append(order); err != nil {
		if level.IsEmpty() {
			s.dropLevel(level.Price)
		}
		return err
	}
	return nil
}

// best returns the side's best level, or nil when the side is empty.
func (s *bookSide) best() *orderbookv1.PriceLevel {
	if len(s.levels) == 0 {
		return nil
	}
	return s.levels[0]
}

// dropLevel removes the level at price from both indexes.
func (s *bookSide) dropLevel(price decimal.Decimal) {
	key := price.String()
	if _, ok := s.byPrice[key]; !ok {
		return
	}
	delete(s.byPrice, key)
	for i, level := range s.levels {
		if level.Price.Equal(price) {
			copy(s.levels[i:], s.levels[i+1:])
			s.levels[len(s.levels)-1] = nil
			s.levels = s.levels[:len(s.levels)-1]
			return
		}
	}
}

// level returns the level at exactly price, if present.
func (s *bookSide) level(price decimal.Decimal) (*orderbookv1.PriceLevel, bool) {
	level, ok := s.byPrice[price.String()]
	return level, ok
}

// eligible reports whether a resting level at price can trade against a taker
// bounded by limit. Market takers accept any price.
func (s *bookSide) eligible(price, limit decimal.Decimal, market bool) bool {
	if market {
		return true
	}
	if s.side == orderbookv1.SideSell {
		return price.LessThanOrEqual(limit)
	}
	return price.GreaterThanOrEqual(limit)
}

// availableQty sums resting quantity at prices a taker bounded by limit could
// trade against, walking best-first and stopping once needed is covered or the
// first ineligible price is reached. Levels are sorted, so eligibility is a
// prefix of the slice.
func (s *bookSide) availableQty(limit decimal.Decimal, market bool, needed decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, level := range s.levels {
		if !s.eligible(level.Price, limit, market) {
			break
		}
		total = total.Add(level.TotalQty())
		if total.GreaterThanOrEqual(needed) {
			break
		}
	}
	return total
}

// depth returns up to n best levels as (price, qty, order count) views.
func (s *bookSide) depth(n int) []LevelView {
	if n > len(s.levels) {
		n = len(s.levels)
	}
	views := make([]LevelView, 0, n)
	for _, level := range s.levels[:n] {
		views = append(views, LevelView{
			Price:  level.Price,
			Qty:    level.TotalQty(),
			Orders: level.OrderCount(),
		})
	}
	return views
}

// orders returns every resting order on the side, best level first, FIFO
// within each level.
func (s *bookSide) orders() []*orderbookv1.Order {
	var out []*orderbookv1.Order
	for _, level := range s.levels {
		out = append(out, level.Orders()...)
	}
	return out
}
