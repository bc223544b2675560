package journal

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// CSVHeader is the fixed column order of a trade export.
var CSVHeader = []string{
	"ID", "Symbol", "Type", "Entry Time", "Exit Time", "Lots", "Entry Price",
	"Exit Price", "Profit", "Currency", "Fees", "Category", "Notes",
}

func csvTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func csvRow(t Trade) []string {
	return []string{
		t.ID,
		t.Symbol,
		string(t.Type),
		csvTime(t.EntryTime),
		csvTime(t.ExitTime),
		t.Lots.String(),
		t.EntryPrice.String(),
		t.ExitPrice.String(),
		t.Profit.String(),
		t.Currency,
		t.Fees.String(),
		t.Category,
		t.Notes,
	}
}

// quoteAll quotes every cell, doubling embedded quotes. encoding/csv only
// quotes cells that need it, and spreadsheet imports of this file expect
// every cell quoted.
func quoteAll(cells []string) string {
	q := make([]string, len(cells))
	for i, c := range cells {
		q[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(q, ",")
}

// WriteTradesCSV writes a header row and one row per trade.
func WriteTradesCSV(w io.Writer, trades []Trade) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(quoteAll(CSVHeader)); err != nil {
		return err
	}
	for _, t := range trades {
		if _, err := bw.WriteString("\n" + quoteAll(csvRow(t))); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTradesCSV parses a file written by WriteTradesCSV. IDs are dropped;
// the store assigns new ones on import.
func ReadTradesCSV(r io.Reader) ([]Trade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, want := range CSVHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("column %d: want %q, got %q", i+1, want, header[i])
		}
	}

	var out []Trade
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		t, err := tradeFromRow(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseCSVTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

func tradeFromRow(rec []string) (Trade, error) {
	entry, err := parseCSVTime(rec[3])
	if err != nil {
		return Trade{}, fmt.Errorf("entry time: %w", err)
	}
	exit, err := parseCSVTime(rec[4])
	if err != nil {
		return Trade{}, fmt.Errorf("exit time: %w", err)
	}
	return Trade{
		Symbol:     rec[1],
		Type:       Side(rec[2]),
		EntryTime:  entry,
		ExitTime:   exit,
		Lots:       ParseNumber(rec[5]),
		EntryPrice: ParseNumber(rec[6]),
		ExitPrice:  ParseNumber(rec[7]),
		Profit:     ParseNumber(rec[8]),
		Currency:   rec[9],
		Fees:       ParseNumber(rec[10]),
		Category:   rec[11],
		Notes:      rec[12],
	}, nil
}
