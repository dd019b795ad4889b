package dto

import (
	"strings"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FlexAmount is a decimal that tolerates the untyped amounts the dashboard
// frontend sends: JSON numbers, quoted numbers, null, or garbage. Anything
// that does not parse decodes to zero instead of failing the whole request.
type FlexAmount struct {
	decimal.Decimal
}

// UnmarshalJSON implements lenient amount decoding via domain.AmountFromRaw.
func (a *FlexAmount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" {
		raw = ""
	}
	a.Decimal = domain.AmountFromRaw(raw)
	return nil
}
