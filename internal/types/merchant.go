package types

// Merchant is one record from the static merchant dataset. The dataset is
// loaded once at startup and never mutated.
type Merchant struct {
	ID           string `json:"id"`
	TradingName  string `json:"trading_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Coordinates  Coords `json:"coordinates"`
}

// MerchantWithDistance is a Merchant annotated with its distance from a
// reference coordinate. Derived, recomputed per search, never stored.
type MerchantWithDistance struct {
	Merchant
	DistanceKm float64 `json:"distance_km"`
}
