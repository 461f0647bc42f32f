// Package pricing resolves the price a buyer pays for a game.
//
// A game carries at most one discount rule. The rule is modelled as a tagged
// value so that a percentage and an absolute amount can never apply together.
package pricing

import (
	"errors"
	"fmt"
)

// Kind identifies which discount rule applies.
type Kind int

const (
	KindNone Kind = iota
	KindPercentage
	KindAmount
)

func (k Kind) String() string {
	switch k {
	case KindPercentage:
		return "percentage"
	case KindAmount:
		return "amount"
	default:
		return "none"
	}
}

// Discount is one of NoDiscount, Percentage(p) or Amount(a).
type Discount struct {
	kind  Kind
	value int64
}

// NoDiscount returns the empty discount.
func NoDiscount() Discount {
	return Discount{}
}

// Percentage returns a percentage discount clamped to 0..100.
// A zero percentage is no discount.
func Percentage(p int) Discount {
	switch {
	case p <= 0:
		return NoDiscount()
	case p > 100:
		p = 100
	}
	return Discount{kind: KindPercentage, value: int64(p)}
}

// Amount returns an absolute discount in currency units.
// A zero or negative amount is no discount.
func Amount(a int64) Discount {
	if a <= 0 {
		return NoDiscount()
	}
	return Discount{kind: KindAmount, value: a}
}

// FromFields converts the two nullable store columns into a Discount.
// When both are set the percentage wins.
func FromFields(percentage *int, amount *int64) Discount {
	if percentage != nil && *percentage > 0 {
		return Percentage(*percentage)
	}
	if amount != nil && *amount > 0 {
		return Amount(*amount)
	}
	return NoDiscount()
}

// Kind reports which rule applies.
func (d Discount) Kind() Kind { return d.kind }

// Value is the percentage or the amount, depending on Kind. Zero for NoDiscount.
func (d Discount) Value() int64 { return d.value }

// Fields converts the discount back into the two nullable store columns.
func (d Discount) Fields() (*int, *int64) {
	switch d.kind {
	case KindPercentage:
		p := int(d.value)
		return &p, nil
	case KindAmount:
		a := d.value
		return nil, &a
	default:
		return nil, nil
	}
}

func (d Discount) String() string {
	switch d.kind {
	case KindPercentage:
		return fmt.Sprintf("%d%%", d.value)
	case KindAmount:
		return fmt.Sprintf("-%d", d.value)
	default:
		return "none"
	}
}

// FinalPrice applies the free override or the discount to price.
// The result is never negative and never above price.
func FinalPrice(price int64, d Discount, free bool) int64 {
	if free || price <= 0 {
		return 0
	}
	switch d.kind {
	case KindPercentage:
		// round half up: price*(100-p)/100
		return (price*(100-d.value) + 50) / 100
	case KindAmount:
		if d.value >= price {
			return 0
		}
		return price - d.value
	default:
		return price
	}
}

// DisplayPercent is the percentage shown on the discount badge. Amount
// discounts are expressed relative to the base price.
func DisplayPercent(price int64, d Discount) int {
	switch d.kind {
	case KindPercentage:
		return int(d.value)
	case KindAmount:
		if price <= 0 {
			return 0
		}
		pct := (d.value*100 + price/2) / price
		if pct > 100 {
			pct = 100
		}
		return int(pct)
	default:
		return 0
	}
}

var (
	ErrConflictingDiscount = errors.New("discount percentage and amount are mutually exclusive")
	ErrPercentageRange     = errors.New("discount percentage must be between 0 and 100")
	ErrNegativeAmount      = errors.New("discount amount must not be negative")
)

// Validate checks admin input before it is stored.
func Validate(percentage *int, amount *int64) error {
	if percentage != nil && amount != nil {
		return ErrConflictingDiscount
	}
	if percentage != nil && (*percentage < 0 || *percentage > 100) {
		return ErrPercentageRange
	}
	if amount != nil && *amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
