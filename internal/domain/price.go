package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Price is a DECIMAL(5,2) money amount. It always serialises as a fixed
// two-decimal string ("9.99", "500.00"), never as a binary float.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price { return Price{d} }

func PriceFromString(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{d}, nil
}

func MustPrice(s string) Price {
	p, err := PriceFromString(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) String() string { return p.StringFixed(2) }

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.StringFixed(2))), nil
}

// UnmarshalJSON accepts both "20.50" and 20.5.
func (p *Price) UnmarshalJSON(b []byte) error {
	s := string(b)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid price %s: %w", string(b), err)
	}
	p.Decimal = d
	return nil
}

func (p Price) Value() (driver.Value, error) { return p.StringFixed(2), nil }

func (p *Price) Scan(v any) error { return p.Decimal.Scan(v) }
