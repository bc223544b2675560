package analytics

import (
	"io"
	"text/template"
	"time"
)

// Summary bundles the headline numbers for an account.
type Summary struct {
	Account   string
	Currency  string
	Decimals  int
	Generated time.Time

	Balance        float64
	TotalPnL       float64
	Trades         int
	Wins           int
	Losses         int
	WinRate        float64
	AverageWin     float64
	AverageLoss    float64
	ProfitFactor   float64
	MaxDrawdownPct float64
	Deposited      float64
	Withdrawn      float64

	TopSymbols []GroupProfit
	Categories []GroupProfit
}

// Summary computes every KPI in one pass over the current records.
func (a *Analytics) Summary(account, currency string, decimals int) Summary {
	s := Summary{
		Account:        account,
		Currency:       currency,
		Decimals:       decimals,
		Balance:        a.Balance(),
		TotalPnL:       a.TotalPnL(),
		Trades:         len(a.src.Trades()),
		WinRate:        a.WinRate(),
		AverageWin:     a.AverageWin(),
		AverageLoss:    a.AverageLoss(),
		ProfitFactor:   a.ProfitFactor(),
		MaxDrawdownPct: a.MaxDrawdownPct(),
		TopSymbols:     a.TopSymbols(10),
		Categories:     a.ProfitByCategory(),
	}
	for _, t := range a.src.Trades() {
		switch {
		case t.Profit > 0:
			s.Wins++
		case t.Profit < 0:
			s.Losses++
		}
	}
	s.Deposited, s.Withdrawn = a.DepositTotals()
	return s
}

var orgFuncs = template.FuncMap{
	"money": func(s Summary, v float64) string { return FormatMoney(v, s.Currency, s.Decimals) },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var orgTemplate = template.Must(template.New("summary").Funcs(orgFuncs).Parse(SummaryOrgTemplate))

// WriteOrg renders s as an Org-mode block.
func WriteOrg(w io.Writer, s Summary) error {
	return orgTemplate.Execute(w, s)
}

const SummaryOrgTemplate = `* JOURNAL: {{.Account}}
:PROPERTIES:
:ACCOUNT:     {{.Account}}
:CURRENCY:    {{.Currency}}
:BALANCE:     {{money . .Balance}}
:NET_PL:      {{money . .TotalPnL}}
:TRADES:      {{.Trades}}
:WINS:        {{.Wins}}
:LOSSES:      {{.Losses}}
:WIN_RATE:    {{printf "%.1f" .WinRate}}
:PROFIT_FAC:  {{if ne .ProfitFactor 0.0}}{{printf "%.2f" .ProfitFactor}}{{else}}-{{end}}
:MAX_DD_PCT:  {{printf "%.2f" .MaxDrawdownPct}}
:CREATED:     [{{(orTime .Generated).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Balance:       *{{money . .Balance}}*
- Net P/L:       *{{money . .TotalPnL}}*
- Win Rate:      *{{printf "%.1f" .WinRate}}%*
- Average Win:   *{{money . .AverageWin}}*
- Average Loss:  *{{money . .AverageLoss}}*
- Deposited:     {{money . .Deposited}}
- Withdrawn:     {{money . .Withdrawn}}
{{- if .TopSymbols}}

** Top Symbols
| Symbol | Net P/L |
|--------+---------|
{{- range .TopSymbols}}
| {{.Key}} | {{money $ .Profit}} |
{{- end}}
{{- end}}
{{- if .Categories}}

** By Category
| Category | Net P/L |
|----------+---------|
{{- range .Categories}}
| {{.Key}} | {{money $ .Profit}} |
{{- end}}
{{- end}}
`
