package domain

type SortBy int

const (
	SortNameAscending SortBy = iota
	SortNameDescending
	SortPriceAscending
	SortPriceDescending
)

// ParseSortBy maps the wire names of the sort modes; anything unknown
// falls back to the default name-ascending order.
func ParseSortBy(s string) SortBy {
	switch s {
	case "name_desc":
		return SortNameDescending
	case "price_asc":
		return SortPriceAscending
	case "price_desc":
		return SortPriceDescending
	default:
		return SortNameAscending
	}
}

// Less is the ordering function for the sort mode. Name orders break
// ties on id ascending, price orders on name ascending, so any two runs
// over the same data produce the same sequence.
func (s SortBy) Less(a, b *MotorbikeSummary) bool {
	switch s {
	case SortNameDescending:
		if a.Name != b.Name {
			return a.Name > b.Name
		}
		return a.ID.String() < b.ID.String()
	case SortPriceAscending:
		if a.TotalPrice() != b.TotalPrice() {
			return a.TotalPrice() < b.TotalPrice()
		}
		return a.Name < b.Name
	case SortPriceDescending:
		if a.TotalPrice() != b.TotalPrice() {
			return a.TotalPrice() > b.TotalPrice()
		}
		return a.Name < b.Name
	default:
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID.String() < b.ID.String()
	}
}
