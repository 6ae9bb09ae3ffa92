package domain

// DefaultSaleListLimit applies when a sale listing does not ask for a page size.
const DefaultSaleListLimit = 50

// MaxSaleListLimit caps a single sale page.
const MaxSaleListLimit = 500

// SaleFilter narrows a sale listing. Empty fields do not filter.
type SaleFilter struct {
	CustomerID string
	ShopID     ShopID
	Limit      int
	NextToken  string
}

// NormalizedLimit clamps Limit into (0, MaxSaleListLimit].
func (f SaleFilter) NormalizedLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultSaleListLimit
	case f.Limit > MaxSaleListLimit:
		return MaxSaleListLimit
	default:
		return f.Limit
	}
}

// SalePage is one page of sales, newest first. NextToken is empty on the last page.
type SalePage struct {
	Sales     []Sale
	NextToken string
}
