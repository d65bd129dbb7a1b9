package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalLenient(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"mastercardAmount": 100.25}`, "100.25"},
		{"numeric string", `{"mastercardAmount": "42.5"}`, "42.5"},
		{"junk string", `{"mastercardAmount": "abc"}`, "0"},
		{"empty string", `{"mastercardAmount": ""}`, "0"},
		{"null", `{"mastercardAmount": null}`, "0"},
		{"bool", `{"mastercardAmount": true}`, "0"},
		{"object", `{"mastercardAmount": {"x": 1}}`, "0"},
		{"missing", `{}`, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in CreateSaleRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))
			assert.True(t, in.MastercardAmount.Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", in.MastercardAmount.String(), tt.want)
		})
	}
}

func TestAmount_MarshalAsNumber(t *testing.T) {
	out, err := json.Marshal(SaleResponse{
		Total:         NewAmount(decimal.RequireFromString("175.5")),
		NetworkNumber: 3,
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"total":175.5`)
	assert.Contains(t, string(out), `"mastercardAmount":0`)
}

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount(" 12.5 ").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, ParseAmount("x").IsZero())
	assert.True(t, ParseAmount("").IsZero())
}
