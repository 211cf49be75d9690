// Command curvezeros bootstraps a discount curve from market quotes and
// prints the pillar discount factors and zero rates.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/curve"
	"github.com/goldmanpgjiao/interest-rate-derivatives-pricer/utils"
)

// CurveInput defines the JSON input schema.
type CurveInput struct {
	ValuationDate string    `json:"valuation_date"`
	QuoteType     string    `json:"quote_type"` // "zeros", "dfs", "deposits", "swaps"
	Maturities    []string  `json:"maturities"`
	Quotes        []float64 `json:"quotes"`
	Frequency     string    `json:"frequency"`
	DayCount      string    `json:"day_count"`
	Interpolation string    `json:"interpolation"`
	Compounding   string    `json:"compounding"`
}

// PillarOutput is one row of the bootstrapped curve.
type PillarOutput struct {
	Date           string  `json:"date"`
	DiscountFactor float64 `json:"discount_factor"`
	ZeroRatePct    float64 `json:"zero_rate_pct"`
}

func main() {
	inputPath := flag.String("input", "", "path to JSON input (default: stdin)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "curvezeros: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	var in CurveInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		fmt.Fprintf(os.Stderr, "curvezeros: %v\n", err)
		os.Exit(1)
	}

	pillars, err := build(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "curvezeros: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pillars); err != nil {
		fmt.Fprintf(os.Stderr, "curvezeros: %v\n", err)
		os.Exit(1)
	}
}

func build(in CurveInput) ([]PillarOutput, error) {
	valuation, err := time.Parse("2006-01-02", in.ValuationDate)
	if err != nil {
		return nil, err
	}
	maturities := make([]time.Time, len(in.Maturities))
	for i, s := range in.Maturities {
		if maturities[i], err = time.Parse("2006-01-02", s); err != nil {
			return nil, err
		}
	}

	dayCount := utils.Convention(in.DayCount)
	if in.DayCount == "" {
		dayCount = utils.Act365F
	}
	interpolation := curve.Interpolation(in.Interpolation)
	if in.Interpolation == "" {
		interpolation = curve.DiscountLogLinear
	}
	compounding := curve.Compounding(in.Compounding)
	if in.Compounding == "" {
		compounding = curve.Continuous
	}
	frequency := in.Frequency
	if frequency == "" {
		frequency = "6M"
	}

	var crv *curve.DiscountCurve
	switch in.QuoteType {
	case "zeros":
		crv, err = curve.FromZeroRates(valuation, maturities, in.Quotes, dayCount, interpolation, compounding)
	case "dfs":
		crv, err = curve.FromDiscountFactors(valuation, maturities, in.Quotes, dayCount, interpolation, compounding)
	case "deposits":
		crv, err = curve.FromDeposits(valuation, maturities, in.Quotes, dayCount, interpolation, compounding)
	case "swaps", "":
		crv, err = curve.BootstrapFromParSwaps(valuation, maturities, in.Quotes, frequency, dayCount, interpolation, compounding)
	default:
		return nil, fmt.Errorf("unknown quote type %q", in.QuoteType)
	}
	if err != nil {
		return nil, err
	}

	dates := crv.PillarDates()
	out := make([]PillarOutput, len(dates))
	for i, d := range dates {
		df, err := crv.DiscountFactor(d)
		if err != nil {
			return nil, err
		}
		zero, err := crv.ZeroRate(d)
		if err != nil {
			return nil, err
		}
		out[i] = PillarOutput{
			Date:           d.Format("2006-01-02"),
			DiscountFactor: utils.RoundTo(df, 12),
			ZeroRatePct:    utils.RoundTo(zero*100, 12),
		}
	}
	return out, nil
}
