package journal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Number
	}{
		{`12.5`, 12.5},
		{`-3`, -3},
		{`"42.25"`, 42.25},
		{`" 7 "`, 7},
		{`""`, 0},
		{`null`, 0},
		{`"abc"`, 0},
		{`true`, 0},
		{`"1e3"`, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var v struct {
				N Number `json:"n"`
			}
			require.NoError(t, json.Unmarshal([]byte(`{"n":`+tt.in+`}`), &v))
			assert.Equal(t, tt.want, v.N)
		})
	}
}

func TestNumberMarshalsAsNumber(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(struct {
		N Number `json:"n"`
	}{N: 1.5})
	require.NoError(t, err)
	assert.Equal(t, `{"n":1.5}`, string(b))
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Number(0.1), ParseNumber("0.1"))
	assert.Equal(t, Number(0), ParseNumber("--1"))
	assert.Equal(t, "0.5", ParseNumber("0.50").String())
}
