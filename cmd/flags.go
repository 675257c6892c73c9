package cmd

import (
	"flag"
	"fmt"

	"github.com/gagyebu/ledger"
)

// dateFlag is the common -d date flag, defaulting to today. It accepts the
// same relative notation as ledger.ParseDate ("-1d", "-2w", ...).
type dateFlag struct {
	raw string
}

func (d *dateFlag) register(f *flag.FlagSet) {
	f.StringVar(&d.raw, "d", "0d", "Date of the event (YYYY-MM-DD or relative like -3d).")
}

func (d *dateFlag) parse() (ledger.Date, error) {
	return ledger.ParseDate(d.raw)
}

// rangeFlags is the common -p / -s / -e trio reports use to scope a range.
// With none set the range is open and covers the whole ledger.
type rangeFlags struct {
	period string
	start  string
	end    string
}

func (r *rangeFlags) register(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "", "Predefined period around the end date (day, week, month, quarter, year).")
	f.StringVar(&r.start, "s", "", "Start date of a custom range. Overrides -p.")
	f.StringVar(&r.end, "e", "", "End date of the range, defaults to today.")
}

func (r *rangeFlags) parse() (ledger.Range, error) {
	if r.period == "" && r.start == "" && r.end == "" {
		return ledger.Range{}, nil
	}
	end := ledger.Today()
	if r.end != "" {
		var err error
		end, err = ledger.ParseDate(r.end)
		if err != nil {
			return ledger.Range{}, fmt.Errorf("parsing end date: %w", err)
		}
	}
	if r.start != "" {
		start, err := ledger.ParseDate(r.start)
		if err != nil {
			return ledger.Range{}, fmt.Errorf("parsing start date: %w", err)
		}
		return ledger.NewRange(start, end), nil
	}
	period, err := ledger.ParsePeriod(r.period)
	if err != nil {
		return ledger.Range{}, err
	}
	return period.Range(end), nil
}

// amount turns the common -a float flag into Money in the ledger currency.
func amount(v float64) ledger.Money { return ledger.KRW(v) }
