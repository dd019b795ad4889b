package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/mcodevbytes/finance_dashboard_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexAmountUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain number", `120.5`, "120.5"},
		{"quoted number", `"1000"`, "1000"},
		{"padded string", `" 42.50 "`, "42.5"},
		{"garbage string", `"abc"`, "0"},
		{"empty string", `""`, "0"},
		{"null", `null`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var a dto.FlexAmount
			require.NoError(t, json.Unmarshal([]byte(tc.in), &a))
			assert.Equal(t, tc.want, a.String())
		})
	}
}

func TestCreateTransactionRequestLenientAmounts(t *testing.T) {
	payload := `{
		"clientID": "client-1",
		"totalAmount": "1180",
		"lineItems": [
			{"description": "Website development", "quantity": 2, "unitPrice": "500", "taxRate": "8", "total": 1080},
			{"description": "Domain registration", "quantity": "1", "unitPrice": "oops", "taxRate": null, "total": "100"}
		]
	}`

	var req dto.CreateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	txn := req.ToDomain()
	assert.Equal(t, "1180", txn.TotalAmount.String())
	require.Len(t, txn.LineItems, 2)
	assert.Equal(t, "500", txn.LineItems[0].UnitPrice.String())
	assert.Equal(t, "8", txn.LineItems[0].TaxRate.String())
	// malformed and null amounts degrade to zero, never an error
	assert.True(t, txn.LineItems[1].UnitPrice.IsZero())
	assert.True(t, txn.LineItems[1].TaxRate.IsZero())
	assert.Equal(t, "100", txn.LineItems[1].Total.String())
}
