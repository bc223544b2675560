// Package journal holds the trading journal document and the Store that
// mutates and persists it.
package journal

import (
	"time"
)

type AccountKey string

const (
	Real AccountKey = "real"
	Demo AccountKey = "demo"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

type DepositType string

const (
	DepositIn  DepositType = "deposit"
	Withdrawal DepositType = "withdrawal"
)

// Document is the whole persisted state.
type Document struct {
	Accounts map[AccountKey]*Account `json:"accounts"`
	UI       UI                      `json:"ui"`
}

type UI struct {
	Theme          Theme      `json:"theme"`
	DefaultAccount AccountKey `json:"defaultAccount"`
}

type Account struct {
	Settings Settings `json:"settings"`
	// Balance is a legacy seed value. The displayed balance is always
	// recomputed from deposits and trades.
	Balance    Number    `json:"balance"`
	Deposits   []Deposit `json:"deposits"`
	Trades     []Trade   `json:"trades"`
	Categories []string  `json:"categories"`
}

type Settings struct {
	Currency string `json:"currency"`
	Theme    Theme  `json:"theme"`
	Decimals int    `json:"decimals"`
}

type Trade struct {
	ID         string    `json:"id"`
	Symbol     string    `json:"symbol"`
	Type       Side      `json:"type"`
	EntryTime  time.Time `json:"entryTime"`
	ExitTime   time.Time `json:"exitTime"`
	Lots       Number    `json:"lots"`
	EntryPrice Number    `json:"entryPrice"`
	ExitPrice  Number    `json:"exitPrice"`
	// Profit is entered by hand and is not derived from the prices.
	Profit    Number    `json:"profit"`
	Currency  string    `json:"currency"`
	Fees      Number    `json:"fees"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Net is profit minus fees, the amount a trade moves the balance by.
func (t Trade) Net() float64 {
	return t.Profit.Float() - t.Fees.Float()
}

type Deposit struct {
	ID     string      `json:"id"`
	Type   DepositType `json:"type"`
	Amount Number      `json:"amount"`
	Date   time.Time   `json:"date"`
	Notes  string      `json:"notes"`
}

// Signed returns the amount with the sign implied by the deposit type.
// Anything that is not a deposit counts as a withdrawal.
func (d Deposit) Signed() float64 {
	if d.Type == DepositIn {
		return d.Amount.Float()
	}
	return -d.Amount.Float()
}

// DefaultCategories seed every new account.
var DefaultCategories = []string{"Scalping", "Swing", "News", "Breakout"}

func defaultAccount() *Account {
	return &Account{
		Settings:   Settings{Currency: "ZAR", Theme: Light, Decimals: 2},
		Deposits:   []Deposit{},
		Trades:     []Trade{},
		Categories: append([]string(nil), DefaultCategories...),
	}
}

// DefaultDocument returns the document a fresh install starts with.
func DefaultDocument() *Document {
	return &Document{
		Accounts: map[AccountKey]*Account{
			Real: defaultAccount(),
			Demo: defaultAccount(),
		},
		UI: UI{Theme: Light, DefaultAccount: Real},
	}
}

// normalize replaces nil slices so the document never serialises null
// where a list is expected.
func (a *Account) normalize() {
	if a.Deposits == nil {
		a.Deposits = []Deposit{}
	}
	if a.Trades == nil {
		a.Trades = []Trade{}
	}
	if a.Categories == nil {
		a.Categories = []string{}
	}
}

func (d *Document) normalize() {
	if d.Accounts == nil {
		d.Accounts = map[AccountKey]*Account{}
	}
	for k, a := range d.Accounts {
		if a == nil {
			a = &Account{}
			d.Accounts[k] = a
		}
		a.normalize()
	}
}
