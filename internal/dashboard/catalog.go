package dashboard

import "github.com/nfrund/portview/internal/domain"

// Catalog is the read-only stocks collection, indexed by symbol. It is safe
// to share between dashboards.
type Catalog struct {
	stocks   []domain.Stock
	bySymbol map[string]int
}

// NewCatalog indexes the given stocks. When a symbol appears more than once the
// first record wins; the dataset loader rejects such input anyway.
func NewCatalog(stocks []domain.Stock) *Catalog {
	c := &Catalog{
		stocks:   make([]domain.Stock, len(stocks)),
		bySymbol: make(map[string]int, len(stocks)),
	}
	copy(c.stocks, stocks)
	for i, s := range c.stocks {
		if _, ok := c.bySymbol[s.Symbol]; !ok {
			c.bySymbol[s.Symbol] = i
		}
	}
	return c
}

// Lookup finds a stock by exact symbol equality.
func (c *Catalog) Lookup(symbol string) (domain.Stock, bool) {
	i, ok := c.bySymbol[symbol]
	if !ok {
		return domain.Stock{}, false
	}
	return c.stocks[i], true
}

// Len returns the number of stocks in the catalog.
func (c *Catalog) Len() int { return len(c.stocks) }

// All returns the stocks in collection order.
func (c *Catalog) All() []domain.Stock {
	out := make([]domain.Stock, len(c.stocks))
	copy(out, c.stocks)
	return out
}
