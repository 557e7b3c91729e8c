// Package adc provides per-board ADC calibration for SCuM captures.
//
// Each SCuM board's ADC transfer curve is characterized once against a bench
// supply; the fitted line is recorded here as a Config. Capture files store
// raw ADC LSB counts, and LSBToVolt applies the board's calibration to
// recover volts.
package adc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/kelly-tou/scum-code/errs"
)

// DefaultBoard is the board assumed when none is specified.
const DefaultBoard = "m2"

// Config holds the ADC calibration of a single SCuM board.
type Config struct {
	// Name is the board identifier, e.g. "m2".
	Name string
	// Bits is the ADC resolution in bits.
	Bits int
	// VDD is the supply voltage in volts.
	VDD float64
	// Slope is the fitted transfer curve slope in LSB counts per volt.
	Slope float64
	// Offset is the fitted transfer curve offset in LSB counts.
	Offset float64
}

// Configs registers the characterized boards by name.
var Configs = map[string]Config{
	"m1": {Name: "m1", Bits: 10, VDD: 1.8, Slope: 416.3, Offset: 46.7},
	"m2": {Name: "m2", Bits: 10, VDD: 1.8, Slope: 439.4, Offset: 41.2},
	"m3": {Name: "m3", Bits: 10, VDD: 1.8, Slope: 422.1, Offset: 49.8},
}

// ConfigFromString returns the Config registered for the given board name.
// The lookup is case-insensitive.
//
// Returns errs.ErrUnknownBoard for unregistered names.
func ConfigFromString(name string) (Config, error) {
	config, ok := Configs[strings.ToLower(name)]
	if !ok {
		boards := make([]string, 0, len(Configs))
		for board := range Configs {
			boards = append(boards, board)
		}
		slices.Sort(boards)

		return Config{}, fmt.Errorf("%w: %s (supported: %s)", errs.ErrUnknownBoard, name, strings.Join(boards, ", "))
	}

	return config, nil
}

// LSBToVolt converts a raw ADC reading in LSB counts to volts using the
// board's fitted transfer curve.
func (c Config) LSBToVolt(lsb float64) float64 {
	return (lsb - c.Offset) / c.Slope
}

// VoltToLSB converts volts to the expected raw ADC reading in LSB counts.
// This is the inverse of LSBToVolt.
func (c Config) VoltToLSB(volt float64) float64 {
	return volt*c.Slope + c.Offset
}

// MaxLSB returns the largest representable ADC reading.
func (c Config) MaxLSB() float64 {
	return float64(int(1)<<c.Bits - 1)
}
