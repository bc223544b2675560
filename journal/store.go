package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/tradebook/pkg/id"
)

// Store is the single owner of the journal document. Reads and writes are
// scoped to the current account, and every successful mutation is saved
// through the Backend before the call returns.
//
// A Store is not safe for concurrent use.
type Store struct {
	backend Backend
	doc     *Document
	current AccountKey

	log   zerolog.Logger
	now   func() time.Time
	newID func() string
}

type Option func(*Store)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the clock used for createdAt and default deposit dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs overrides record id generation.
func WithIDs(next func() string) Option {
	return func(s *Store) { s.newID = next }
}

// Open loads the document from b. A corrupt stored document is logged and
// replaced by the defaults; any other backend error is returned.
func Open(b Backend, opts ...Option) (*Store, error) {
	s := &Store{
		backend: b,
		log:     zerolog.Nop(),
		now:     time.Now,
		newID:   id.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "journal").Logger()

	doc, err := b.Load()
	switch {
	case errors.Is(err, ErrCorruptDocument):
		s.log.Error().Err(err).Msg("discarding stored document, starting from defaults")
		doc = DefaultDocument()
	case err != nil:
		return nil, err
	}
	doc.normalize()
	s.doc = doc

	s.current = Real
	if _, ok := doc.Accounts[doc.UI.DefaultAccount]; ok {
		s.current = doc.UI.DefaultAccount
	}
	s.log.Debug().Str("account", string(s.current)).Msg("store opened")
	return s, nil
}

func (s *Store) commit(op string) error {
	if err := s.backend.Save(s.doc); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("failed to save document")
		return fmt.Errorf("%s: %w: %w", op, ErrPersist, err)
	}
	s.log.Debug().Str("op", op).Str("account", string(s.current)).Msg("saved document")
	return nil
}

func (s *Store) account() *Account {
	return s.doc.Accounts[s.current]
}

// Document returns the live document. Callers must not modify it.
func (s *Store) Document() *Document { return s.doc }

// Account returns the key of the current account.
func (s *Store) Account() AccountKey { return s.current }

// SwitchAccount changes which account later calls act on. It is view
// state and is not saved.
func (s *Store) SwitchAccount(key AccountKey) error {
	if _, ok := s.doc.Accounts[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAccount, key)
	}
	s.current = key
	return nil
}

// EffectiveSettings are the current account's settings plus the
// document-wide default account.
type EffectiveSettings struct {
	Settings
	DefaultAccount AccountKey `json:"defaultAccount"`
}

func (s *Store) Settings() EffectiveSettings {
	return EffectiveSettings{
		Settings:       s.account().Settings,
		DefaultAccount: s.doc.UI.DefaultAccount,
	}
}

// SettingsPatch carries the settings fields to change; nil fields are left
// alone.
type SettingsPatch struct {
	Currency       *string     `json:"currency,omitempty"`
	Theme          *Theme      `json:"theme,omitempty"`
	Decimals       *int        `json:"decimals,omitempty"`
	DefaultAccount *AccountKey `json:"defaultAccount,omitempty"`
}

// UpdateSettings merges p into the current account's settings. Theme and
// DefaultAccount are mirrored into the document-level ui block.
func (s *Store) UpdateSettings(p SettingsPatch) error {
	if p.DefaultAccount != nil {
		if _, ok := s.doc.Accounts[*p.DefaultAccount]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAccount, *p.DefaultAccount)
		}
	}
	set := &s.account().Settings
	if p.Currency != nil {
		set.Currency = *p.Currency
	}
	if p.Theme != nil {
		set.Theme = *p.Theme
		s.doc.UI.Theme = *p.Theme
	}
	if p.Decimals != nil {
		set.Decimals = *p.Decimals
	}
	if p.DefaultAccount != nil {
		s.doc.UI.DefaultAccount = *p.DefaultAccount
	}
	return s.commit("update settings")
}
