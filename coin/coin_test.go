package coin

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/lpstake/lpstake/errors"
	"github.com/lpstake/lpstake/lpstaketest/assert"
)

func TestCompareCoin(t *testing.T) {
	cases := map[string]struct {
		a       Coin
		b       Coin
		wantRes int
	}{
		"a greater than b": {
			a:       NewCoin(20, "ABC"),
			b:       NewCoin(19, "ABC"),
			wantRes: 1,
		},
		"a smaller than b": {
			a:       NewCoin(-2, "FOO"),
			b:       NewCoin(1, "FOO"),
			wantRes: -1,
		},
		"zero value coins": {
			a:       Coin{},
			b:       Coin{},
			wantRes: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.a.Compare(tc.b))
		})
	}
}

func TestCoinNegative(t *testing.T) {
	a := NewCoin(456, "ABC")
	n := a.Negative()

	assert.Equal(t, a.Ticker, n.Ticker)
	assert.Equal(t, a.Amount, -n.Amount)

	if nn := a.Negative().Negative(); !a.Equals(nn) {
		t.Fatal("double negation malformed the coin")
	}
}

func TestCoinPredicates(t *testing.T) {
	cases := map[string]struct {
		c           Coin
		zero        bool
		positive    bool
		nonNegative bool
	}{
		"zero":     {c: NewCoin(0, "FOO"), zero: true, nonNegative: true},
		"positive": {c: NewCoin(1, "FOO"), positive: true, nonNegative: true},
		"negative": {c: NewCoin(-1, "FOO")},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.zero, tc.c.IsZero())
			assert.Equal(t, tc.positive, tc.c.IsPositive())
			assert.Equal(t, tc.nonNegative, tc.c.IsNonNegative())
		})
	}

	assert.Equal(t, true, IsEmpty(nil))
}

func TestCoinAdd(t *testing.T) {
	cases := map[string]struct {
		a       Coin
		b       Coin
		want    Coin
		wantErr *errors.Error
	}{
		"simple sum": {
			a:    NewCoin(5, "LPT"),
			b:    NewCoin(7, "LPT"),
			want: NewCoin(12, "LPT"),
		},
		"negative sum": {
			a:    NewCoin(5, "LPT"),
			b:    NewCoin(-7, "LPT"),
			want: NewCoin(-2, "LPT"),
		},
		"different tickers": {
			a:       NewCoin(5, "LPT"),
			b:       NewCoin(7, "RWD"),
			wantErr: errors.ErrInvalidInput,
		},
		"overflow": {
			a:       NewCoin(math.MaxInt64, "LPT"),
			b:       NewCoin(1, "LPT"),
			wantErr: errors.ErrOverflow,
		},
		"underflow": {
			a:       NewCoin(math.MinInt64, "LPT"),
			b:       NewCoin(-1, "LPT"),
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoinSubtract(t *testing.T) {
	got, err := NewCoin(10, "LPT").Subtract(NewCoin(3, "LPT"))
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(7, "LPT"), got)

	_, err = NewCoin(0, "LPT").Subtract(NewCoin(math.MinInt64, "LPT"))
	assert.IsErr(t, errors.ErrOverflow, err)
}

func TestCoinValidate(t *testing.T) {
	cases := map[string]struct {
		c       Coin
		wantErr *errors.Error
	}{
		"valid":         {c: NewCoin(1, "LPT")},
		"negative ok":   {c: NewCoin(-1, "RWDS")},
		"missing":       {c: NewCoin(1, ""), wantErr: errors.ErrInvalidInput},
		"lowercase":     {c: NewCoin(1, "lpt"), wantErr: errors.ErrInvalidInput},
		"too long":      {c: NewCoin(1, "LPTOK"), wantErr: errors.ErrInvalidInput},
		"too short":     {c: NewCoin(1, "LP"), wantErr: errors.ErrInvalidInput},
		"digits inside": {c: NewCoin(1, "LP1"), wantErr: errors.ErrInvalidInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.c.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
				return
			}
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}

func TestCoinMarshal(t *testing.T) {
	c := NewCoin(1234, "RWD")
	raw, err := c.Marshal()
	assert.Nil(t, err)

	var got Coin
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, c, got)

	assert.IsErr(t, errors.ErrInvalidInput, got.Unmarshal(nil))
}

func TestCoinJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr bool
	}{
		"human format": {
			raw:  `"42 LPT"`,
			want: NewCoin(42, "LPT"),
		},
		"negative human format": {
			raw:  `"-3RWD"`,
			want: NewCoin(-3, "RWD"),
		},
		"object": {
			raw:  `{"ticker": "RWD", "amount": 7}`,
			want: NewCoin(7, "RWD"),
		},
		"fractions are not supported": {
			raw:     `"4.2 LPT"`,
			wantErr: true,
		},
		"not a coin": {
			raw:     `[1, 2]`,
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got Coin
			err := json.Unmarshal([]byte(tc.raw), &got)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("want error, got %v", got)
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCoinString(t *testing.T) {
	assert.Equal(t, "12 LPT", NewCoin(12, "LPT").String())
	assert.Equal(t, "-1", NewCoin(-1, "").String())

	var c Coin
	assert.Nil(t, c.Set("15 RWD"))
	assert.Equal(t, NewCoin(15, "RWD"), c)
	assert.IsErr(t, errors.ErrInvalidInput, c.Set("fifteen"))
}
