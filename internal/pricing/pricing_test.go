package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestFinalPrice_Scenario(t *testing.T) {
	const price = 100000

	assert.Equal(t, int64(80000), FinalPrice(price, Percentage(20), false))
	assert.Equal(t, int64(70000), FinalPrice(price, Amount(30000), false))
	assert.Equal(t, int64(0), FinalPrice(price, Percentage(20), true))
	assert.Equal(t, int64(0), FinalPrice(price, Amount(30000), true))
	assert.Equal(t, int64(price), FinalPrice(price, NoDiscount(), false))
}

func TestFinalPrice_PercentageMatchesRounding(t *testing.T) {
	for _, price := range []int64{0, 1, 7, 99, 1000, 15999, 100000, 2499999} {
		for p := 0; p <= 100; p++ {
			got := FinalPrice(price, Percentage(p), false)
			want := int64(math.Round(float64(price) * (1 - float64(p)/100)))
			assert.Equal(t, want, got, "price=%d pct=%d", price, p)
			assert.LessOrEqual(t, got, price)
		}
	}
}

func TestFinalPrice_AmountFloorsAtZero(t *testing.T) {
	for _, price := range []int64{0, 10, 5000, 100000} {
		for _, amount := range []int64{0, 1, 10, 4999, 5000, 100000, 200000} {
			got := FinalPrice(price, Amount(amount), false)
			want := price - amount
			if want < 0 {
				want = 0
			}
			assert.Equal(t, want, got, "price=%d amount=%d", price, amount)
			assert.GreaterOrEqual(t, got, int64(0))
		}
	}
}

func TestPercentage_Clamps(t *testing.T) {
	assert.Equal(t, KindNone, Percentage(0).Kind())
	assert.Equal(t, KindNone, Percentage(-5).Kind())
	assert.Equal(t, int64(100), Percentage(150).Value())
	assert.Equal(t, KindAmount, Amount(1).Kind())
	assert.Equal(t, KindNone, Amount(0).Kind())
}

func TestFromFields_PercentageWins(t *testing.T) {
	d := FromFields(intPtr(10), int64Ptr(5000))
	assert.Equal(t, KindPercentage, d.Kind())
	assert.Equal(t, int64(10), d.Value())

	d = FromFields(intPtr(0), int64Ptr(5000))
	assert.Equal(t, KindAmount, d.Kind())

	assert.Equal(t, KindNone, FromFields(nil, nil).Kind())
}

func TestDiscount_FieldsRoundTrip(t *testing.T) {
	p, a := Percentage(25).Fields()
	assert.Equal(t, 25, *p)
	assert.Nil(t, a)

	p, a = Amount(700).Fields()
	assert.Nil(t, p)
	assert.Equal(t, int64(700), *a)

	p, a = NoDiscount().Fields()
	assert.Nil(t, p)
	assert.Nil(t, a)
}

func TestDisplayPercent(t *testing.T) {
	assert.Equal(t, 20, DisplayPercent(100000, Percentage(20)))
	assert.Equal(t, 30, DisplayPercent(100000, Amount(30000)))
	assert.Equal(t, 33, DisplayPercent(90000, Amount(30000)))
	assert.Equal(t, 100, DisplayPercent(1000, Amount(5000)))
	assert.Equal(t, 0, DisplayPercent(0, Amount(5000)))
	assert.Equal(t, 0, DisplayPercent(1000, NoDiscount()))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil, nil))
	assert.NoError(t, Validate(intPtr(50), nil))
	assert.NoError(t, Validate(nil, int64Ptr(100)))
	assert.ErrorIs(t, Validate(intPtr(10), int64Ptr(100)), ErrConflictingDiscount)
	assert.ErrorIs(t, Validate(intPtr(101), nil), ErrPercentageRange)
	assert.ErrorIs(t, Validate(intPtr(-1), nil), ErrPercentageRange)
	assert.ErrorIs(t, Validate(nil, int64Ptr(-1)), ErrNegativeAmount)
}
