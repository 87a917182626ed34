package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDecimal(t *testing.T) {
	t.Run("plain numbers", func(t *testing.T) {
		assert.Equal(t, "12.5", ToDecimal("12.5").String())
		assert.Equal(t, "7", ToDecimal("7").String())
		assert.Equal(t, "-3.25", ToDecimal("-3.25").String())
	})

	t.Run("comma decimal separator", func(t *testing.T) {
		assert.Equal(t, "12.5", ToDecimal("12,5").String())
		assert.Equal(t, "0.56", ToDecimal("0,56").String())
	})

	t.Run("thousands separators and non-breaking spaces", func(t *testing.T) {
		assert.Equal(t, "1250", ToDecimal("1 250").String())
		assert.Equal(t, "1250", ToDecimal("1 250").String())
		assert.Equal(t, "1250.75", ToDecimal("1 250,75").String())
	})

	t.Run("non-numeric cells yield nil, never an error", func(t *testing.T) {
		assert.Nil(t, ToDecimal(""))
		assert.Nil(t, ToDecimal("   "))
		assert.Nil(t, ToDecimal("Тканина"))
		assert.Nil(t, ToDecimal("12.5 EUR"))
		assert.Nil(t, ToDecimal("12.5.6"))
		assert.Nil(t, ToDecimal("-"))
	})
}

func TestToMillimeters(t *testing.T) {
	t.Run("whole values", func(t *testing.T) {
		mm := ToMillimeters("2000")
		assert.NotNil(t, mm)
		assert.Equal(t, 2000, *mm)
	})

	t.Run("fractions truncate", func(t *testing.T) {
		mm := ToMillimeters("2000.9")
		assert.NotNil(t, mm)
		assert.Equal(t, 2000, *mm)
	})

	t.Run("junk is nil", func(t *testing.T) {
		assert.Nil(t, ToMillimeters("немає"))
	})
}

func TestRoundMoney(t *testing.T) {
	t.Run("HALF_UP at two decimals", func(t *testing.T) {
		testCases := map[string]string{
			"2.004": "2.00",
			"2.005": "2.01",
			"2.015": "2.02",
			"10":    "10.00",
			"1.999": "2.00",
		}

		for input, expected := range testCases {
			assert.Equal(t, expected, RoundMoney(decimal.RequireFromString(input)).StringFixed(2))
		}
	})
}

func TestRoundUahTotal(t *testing.T) {
	t.Run("always rounds up to a whole hryvnia", func(t *testing.T) {
		testCases := map[string]string{
			"100.01": "101",
			"100.99": "101",
			"100":    "100",
			"417.2":  "418",
		}

		for input, expected := range testCases {
			assert.Equal(t, expected, RoundUahTotal(decimal.RequireFromString(input)).String())
		}
	})

	t.Run("distinct from the EUR policy", func(t *testing.T) {
		d := decimal.RequireFromString("100.004")
		assert.Equal(t, "100.00", RoundMoney(d).StringFixed(2))
		assert.Equal(t, "101", RoundUahTotal(d).String())
	})
}
