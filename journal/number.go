package journal

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a numeric record field. Hand-entered values arrive as strings
// as often as numbers, so decoding accepts both and coerces anything it
// cannot read (null, "", "abc") to zero.
type Number float64

// ParseNumber coerces s the same way Number's JSON decoder does.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return Number(d.InexactFloat64())
}

func (n Number) Float() float64 { return float64(n) }

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = ParseNumber(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		// true/false/objects carry no number.
		*n = 0
		return nil
	}
	*n = Number(f)
	return nil
}
