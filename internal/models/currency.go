package models

import "fmt"

// Currency is one of the two currencies the shop trades in.
type Currency string

const (
	NPR Currency = "NPR"
	INR Currency = "INR"
)

// Currencies lists every supported currency, in display order.
var Currencies = []Currency{NPR, INR}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	return c == NPR || c == INR
}

// Other returns the complementary currency. Every exchange involves exactly
// the pair NPR/INR, so the counter-currency is always determined.
func (c Currency) Other() (Currency, error) {
	switch c {
	case NPR:
		return INR, nil
	case INR:
		return NPR, nil
	default:
		return "", fmt.Errorf("unknown currency %q", c)
	}
}
