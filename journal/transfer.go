package journal

import (
	"encoding/json"
	"fmt"
)

// AccountExport is the transport form of a single account.
type AccountExport struct {
	Account AccountKey `json:"account"`
	Data    *Account   `json:"data"`
}

// ExportFull returns the whole document as indented JSON.
func (s *Store) ExportFull() (string, error) {
	b, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(b), nil
}

// ExportAccount returns the current account tagged with its key.
func (s *Store) ExportAccount() (string, error) {
	b, err := json.MarshalIndent(AccountExport{Account: s.current, Data: s.account()}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode account %s: %w", s.current, err)
	}
	return string(b), nil
}

// Import accepts either a full document (has "accounts") or a single
// account export (has "account" and "data"). A full document is merged
// against the defaults; a single account replaces that account outright.
// Nothing is changed when the payload cannot be used.
func (s *Store) Import(text string) error {
	raw, err := decodeObject([]byte(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}

	switch {
	case present(raw["accounts"]):
		return s.importFull(raw)
	case present(raw["account"]) && present(raw["data"]):
		return s.importAccount([]byte(text))
	default:
		return ErrUnrecognizedPayload
	}
}

// ImportFull is Import restricted to full documents.
func (s *Store) ImportFull(text string) error {
	raw, err := decodeObject([]byte(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}
	if !present(raw["accounts"]) {
		return ErrUnrecognizedPayload
	}
	return s.importFull(raw)
}

func (s *Store) importFull(raw map[string]any) error {
	if _, ok := raw["accounts"].(map[string]any); !ok {
		return fmt.Errorf("%w: accounts must be an object", ErrImport)
	}
	doc, err := mergeWithDefaults(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}

	s.doc = doc
	if _, ok := s.doc.Accounts[s.current]; !ok {
		s.current = Real
	}
	return s.commit("import document")
}

func (s *Store) importAccount(text []byte) error {
	var in AccountExport
	if err := json.Unmarshal(text, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrImport, err)
	}
	if in.Account != Real && in.Account != Demo {
		return fmt.Errorf("%w: %w: %q", ErrImport, ErrUnknownAccount, in.Account)
	}
	if in.Data == nil {
		return fmt.Errorf("%w: data must be an object", ErrImport)
	}

	in.Data.normalize()
	s.doc.Accounts[in.Account] = in.Data
	return s.commit("import account " + string(in.Account))
}

// present mirrors a truthiness check on a decoded JSON value: missing,
// null, false, zero and "" do not count.
func present(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	default:
		return true
	}
}
