package journal

import (
	"encoding/json"
	"fmt"
)

// StorageKey is the well-known key the document is kept under.
const StorageKey = "tradingJournalData"

// Backend is the commit point for the whole document.
type Backend interface {
	// Load returns the stored document, or DefaultDocument when nothing
	// has been stored yet.
	Load() (*Document, error)
	Save(*Document) error
}

// KeyValue is the subset of a key-value store KVBackend needs.
type KeyValue interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// KVBackend keeps the document as JSON under a single key.
type KVBackend struct {
	kv  KeyValue
	key string
}

var _ Backend = (*KVBackend)(nil)

// NewKVBackend stores the document under key, or StorageKey when key is
// empty.
func NewKVBackend(kv KeyValue, key string) *KVBackend {
	if key == "" {
		key = StorageKey
	}
	return &KVBackend{kv: kv, key: key}
}

func (b *KVBackend) Load() (*Document, error) {
	raw, ok, err := b.kv.Get(b.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", b.key, err)
	}
	if !ok {
		return DefaultDocument(), nil
	}
	doc, err := DecodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return doc, nil
}

func (b *KVBackend) Save(doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := b.kv.Set(b.key, data); err != nil {
		return fmt.Errorf("save %s: %w", b.key, err)
	}
	return nil
}
