package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a trade as an Org-mode entry. Structured fields go
// in a PROPERTIES drawer so they stay searchable; the free-text notes
// become the body.
func FormatTradeOrg(t Trade) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Trade: %s %s (%s)\n", t.Symbol, t.Type, shortID(t.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", t.ID)
	fmt.Fprintf(&b, ":SYMBOL: %s\n", t.Symbol)
	fmt.Fprintf(&b, ":TYPE: %s\n", t.Type)
	fmt.Fprintf(&b, ":LOTS: %s\n", t.Lots)
	fmt.Fprintf(&b, ":ENTRY_PRICE: %.5f\n", t.EntryPrice.Float())
	fmt.Fprintf(&b, ":EXIT_PRICE: %.5f\n", t.ExitPrice.Float())
	fmt.Fprintf(&b, ":ENTRY_TIME: %s\n", orgTime(t.EntryTime))
	fmt.Fprintf(&b, ":EXIT_TIME: %s\n", orgTime(t.ExitTime))
	fmt.Fprintf(&b, ":PROFIT: %.2f\n", t.Profit.Float())
	fmt.Fprintf(&b, ":FEES: %.2f\n", t.Fees.Float())
	fmt.Fprintf(&b, ":NET: %.2f\n", t.Net())
	if t.Currency != "" {
		fmt.Fprintf(&b, ":CURRENCY: %s\n", t.Currency)
	}
	if t.Category != "" {
		fmt.Fprintf(&b, ":CATEGORY: %s\n", t.Category)
	}
	b.WriteString(":END:\n")
	if notes := strings.TrimSpace(t.Notes); notes != "" {
		b.WriteString("\n")
		b.WriteString(notes)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []Trade) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func orgTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[len(full)-8:]
}
