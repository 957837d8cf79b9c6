package salesdatadomain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexibleAmount tolerates the loose typing of the sales data service, which
// has been observed to serialize amounts as numbers, numeric strings, or
// null. Anything non-numeric decodes to 0 so a single bad row can never
// poison an aggregate with NaN.
type FlexibleAmount int64

func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = FlexibleAmount(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*a = 0
		return nil
	}

	*a = FlexibleAmount(v)
	return nil
}

// SalesRow is one row of the get_sales response, verbatim wire shape.
type SalesRow struct {
	ID             int            `json:"id,omitempty"`
	SalesDate      string         `json:"sales_date,omitempty"`
	LocationID     int            `json:"location_id,omitempty"`
	Amount         FlexibleAmount `json:"amount,omitempty"`
	SalesChannel   string         `json:"sales_channel,omitempty"`
	Category       string         `json:"category,omitempty"`
	Tactics        string         `json:"tactics,omitempty"`
	EmployeeNumber int            `json:"employee_number,omitempty"`
	EmployeeName   string         `json:"employee_name,omitempty"`
	Memo           string         `json:"memo,omitempty"`
}

// EmployeeRow is one row of the get_employee response.
type EmployeeRow struct {
	EmployeeNumber int    `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	LocationID     int    `json:"location_id"`
	EmployeeRole   int    `json:"employee_role"`
	Email          string `json:"employee_address,omitempty"`
	PasswordHash   string `json:"employee_password,omitempty"`
}

// TargetRow is one row of the get_sales_target response.
type TargetRow struct {
	LocationID   int            `json:"location_id"`
	TargetDate   string         `json:"target_date"`
	TargetAmount FlexibleAmount `json:"target_amount"`
}

// GetSalesParams selects either a single date or an inclusive range,
// optionally narrowed to one location.
type GetSalesParams struct {
	SalesDate     string
	SalesDateFrom string
	SalesDateTo   string
	LocationID    *int
}
