package main

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// separatorRegex matches plain spaces, NBSP and narrow NBSP used as
// thousands separators in the price list.
var separatorRegex = regexp.MustCompile(`[\s\x{00A0}\x{202F}]+`)

var numberRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// ToDecimal coerces a raw cell value to a decimal. Comma decimal separators
// become dots, separators are stripped; anything else non-numeric yields nil.
// A sparse price table is valid data, so this never returns an error.
func ToDecimal(raw string) *decimal.Decimal {
	s := separatorRegex.ReplaceAllString(strings.TrimSpace(raw), "")
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	if !numberRegex.MatchString(s) {
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// ToMillimeters coerces a cell to a whole millimeter count, nil when the
// cell is empty or not numeric. Fractions are truncated the way the source
// price list intends ("2000.0" is 2000).
func ToMillimeters(raw string) *int {
	d := ToDecimal(raw)
	if d == nil {
		return nil
	}
	mm := int(d.IntPart())
	return &mm
}

// RoundMoney applies the EUR line-item policy: 2 decimals, HALF_UP.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundUahTotal applies the order-total policy: round up to a whole hryvnia.
// Kept separate from RoundMoney on purpose; the two policies must not be
// unified without business sign-off.
func RoundUahTotal(d decimal.Decimal) decimal.Decimal {
	return d.Ceil()
}
