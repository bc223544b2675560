package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// mergeDeep overlays src onto dst. Objects are merged key by key, every
// other value (scalars, arrays, null) from src replaces the one in dst.
// Neither input is modified.
func mergeDeep(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, sv := range src {
		sobj, ok := sv.(map[string]any)
		if !ok {
			out[k] = sv
			continue
		}
		dobj, ok := out[k].(map[string]any)
		if !ok {
			out[k] = sobj
			continue
		}
		out[k] = mergeDeep(dobj, sobj)
	}
	return out
}

func decodeObject(b []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	return obj, nil
}

// mergeWithDefaults decodes raw as a document and fills every field it
// lacks from DefaultDocument.
func mergeWithDefaults(raw map[string]any) (*Document, error) {
	defBytes, err := json.Marshal(DefaultDocument())
	if err != nil {
		return nil, err
	}
	def, err := decodeObject(defBytes)
	if err != nil {
		return nil, err
	}

	merged, err := json.Marshal(mergeDeep(def, raw))
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(merged, &doc); err != nil {
		return nil, err
	}
	doc.normalize()
	for _, key := range []AccountKey{Real, Demo} {
		if _, ok := doc.Accounts[key]; !ok {
			doc.Accounts[key] = defaultAccount()
		}
	}
	return &doc, nil
}

// DecodeDocument parses a persisted or exported document and merges it
// against the defaults.
func DecodeDocument(b []byte) (*Document, error) {
	raw, err := decodeObject(b)
	if err != nil {
		return nil, err
	}
	return mergeWithDefaults(raw)
}
