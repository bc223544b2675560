//go:build blackbox

package blackbox

import (
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

// storedDocument reads the raw journal document straight from the database.
func storedDocument(t *testing.T, dbPath string) map[string]any {
	t.Helper()

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var raw string
	if err := db.QueryRow(`SELECT value FROM kv WHERE key = 'tradingJournalData'`).Scan(&raw); err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func accountRecords(t *testing.T, doc map[string]any, account, field string) []any {
	t.Helper()

	accounts, _ := doc["accounts"].(map[string]any)
	acct, _ := accounts[account].(map[string]any)
	recs, ok := acct[field].([]any)
	if !ok {
		t.Fatalf("accounts.%s.%s missing in %v", account, field, doc)
	}
	return recs
}
