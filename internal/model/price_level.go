package model

import "database/sql"

// PriceLevel is a price tier that restaurants reference, rendered as a
// short symbol ("$", "$$", ...) on cards.  Restaurants without a
// resolvable tier fall back to a deterministic default symbol instead
// of an empty field; see listing.PriceSymbol.
type PriceLevel struct {
	ID          uint64         // price_levels.id
	Name        string         // price_levels.name
	Symbol      string         // price_levels.symbol
	Description sql.NullString // price_levels.description
}
