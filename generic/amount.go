package generic

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit, for display and storage
// =============================================================================

// Amount is a decimal quantity of days or hours. Calculations run in
// float64; Amount is what leaves the process (JSON, sqlite, CLI output).
type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitDays  Unit = "days"
	UnitHours Unit = "hours"
	UnitRatio Unit = "ratio"
)

// DisplayPlaces is the rounding applied by Rounded.
const DisplayPlaces = 4

// NewAmount converts a float. The second result is false for NaN and ±Inf,
// which have no decimal form.
func NewAmount(value float64, unit Unit) (Amount, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Amount{Unit: unit}, false
	}
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}, true
}

func NewAmountFromInt(value int, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value)), Unit: unit}
}

// ParseDecimal reads a decimal column; empty input is zero.
func ParseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// FormatDecimal renders f exactly as stored text.
func FormatDecimal(f float64) string {
	return decimal.NewFromFloat(f).String()
}

func (a Amount) Rounded() Amount  { return Amount{Value: a.Value.Round(DisplayPlaces), Unit: a.Unit} }
func (a Amount) Float64() float64 { return a.Value.InexactFloat64() }
func (a Amount) IsNegative() bool { return a.Value.IsNegative() }
func (a Amount) IsZero() bool     { return a.Value.IsZero() }
func (a Amount) String() string   { return a.Value.String() + " " + string(a.Unit) }

type amountJSON struct {
	Value json.Number `json:"value"`
	Unit  Unit        `json:"unit"`
}

// MarshalJSON writes {"value": 12.5, "unit": "hours"} with the value as a
// JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(amountJSON{Value: json.Number(a.Value.String()), Unit: a.Unit})
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var raw amountJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := decimal.NewFromString(raw.Value.String())
	if err != nil {
		return err
	}
	a.Value, a.Unit = v, raw.Unit
	return nil
}
