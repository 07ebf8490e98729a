package daybook

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// This file handles the journal import format: the flat-file channel used by
// outside producers to feed a one-shot replay of an account. It is an input
// surface only; the account never writes it back.
//
// The journal is a CSV file, one row per event, first field the event kind:
//
//	day,<date>,<cash>[,<position_value>]
//	buy,<date>,<security>,<name>,<quantity>,<price>,<commission>,<other_fees>
//	sell,<date>,<security>,<quantity>,<price>,<commission>,<other_fees>,<stamp_duty>,<transfer_fee>
//
// A 'day' row seeds (or destructively replaces) the day's snapshot with the
// given cash. Lines starting with '#' are comments.

// ImportJournal replays a journal read from 'r' into a fresh account
// denominated in the given currency.
func ImportJournal(r io.Reader, currency string) (*Account, error) {
	account := New(currency)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot parse journal: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if err := replay(account, record); err != nil {
			return nil, fmt.Errorf("journal line %d: %w", line, err)
		}
	}
	return account, nil
}

// replay applies a single journal row to the account.
func replay(a *Account, record []string) error {
	if len(record) == 0 {
		return nil
	}
	kind := record[0]
	switch kind {
	case "day":
		if len(record) < 3 || len(record) > 4 {
			return fmt.Errorf("'day' row wants 2 or 3 fields, got %d", len(record)-1)
		}
		on, err := ParseDate(record[1])
		if err != nil {
			return err
		}
		cash, err := parseAmount(record[2], a.Currency())
		if err != nil {
			return fmt.Errorf("invalid cash: %w", err)
		}
		positionValue := M(0, a.Currency())
		if len(record) == 4 {
			if positionValue, err = parseAmount(record[3], a.Currency()); err != nil {
				return fmt.Errorf("invalid position value: %w", err)
			}
		}
		a.AddDailyData(on, cash, positionValue, nil, nil, nil)
		return nil

	case "buy":
		if len(record) != 8 {
			return fmt.Errorf("'buy' row wants 7 fields, got %d", len(record)-1)
		}
		on, err := ParseDate(record[1])
		if err != nil {
			return err
		}
		security, name := record[2], record[3]
		quantity, err := parseQuantity(record[4])
		if err != nil {
			return fmt.Errorf("invalid quantity: %w", err)
		}
		amounts, err := parseAmounts(record[5:8], a.Currency())
		if err != nil {
			return err
		}
		return a.RecordBuy(on, security, name, quantity, amounts[0], amounts[1], amounts[2])

	case "sell":
		if len(record) != 9 {
			return fmt.Errorf("'sell' row wants 8 fields, got %d", len(record)-1)
		}
		on, err := ParseDate(record[1])
		if err != nil {
			return err
		}
		security := record[2]
		quantity, err := parseQuantity(record[3])
		if err != nil {
			return fmt.Errorf("invalid quantity: %w", err)
		}
		amounts, err := parseAmounts(record[4:9], a.Currency())
		if err != nil {
			return err
		}
		return a.RecordSell(on, security, quantity, amounts[0], amounts[1], amounts[2], amounts[3], amounts[4])

	default:
		return fmt.Errorf("unknown journal row kind %q", kind)
	}
}

func parseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Q(d), nil
}

func parseAmount(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return M(d, currency), nil
}

// parseAmounts parses a run of money fields, reporting the first failure.
func parseAmounts(fields []string, currency string) ([]Money, error) {
	amounts := make([]Money, len(fields))
	for i, f := range fields {
		m, err := parseAmount(f, currency)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", f, err)
		}
		amounts[i] = m
	}
	return amounts, nil
}
