package tableview

import (
	"github.com/team6/sales-report-api/internal/domain"
)

// SalesColumns exposes the sortable and filterable columns of the sales
// table. Column names follow the wire field names the web client sends.
func SalesColumns() Columns[domain.SalesRecord] {
	return Columns[domain.SalesRecord]{
		"sales_date": func(r domain.SalesRecord) Cell {
			if r.SalesDate.IsZero() {
				return MissingCell()
			}
			return StringCell(r.SalesDateString())
		},
		"amount": func(r domain.SalesRecord) Cell {
			return NumberCell(float64(r.Amount))
		},
		"location_id": func(r domain.SalesRecord) Cell {
			return NumberCell(float64(r.LocationID))
		},
		"employee_number": func(r domain.SalesRecord) Cell {
			return NumberCell(float64(r.EmployeeNumber))
		},
		"employee_name": func(r domain.SalesRecord) Cell {
			if r.EmployeeName == "" {
				return MissingCell()
			}
			return StringCell(r.EmployeeName)
		},
		"sales_channel": func(r domain.SalesRecord) Cell {
			if r.SalesChannel == "" {
				return MissingCell()
			}
			return StringCell(r.SalesChannel)
		},
		"category": func(r domain.SalesRecord) Cell {
			if r.Category == "" {
				return MissingCell()
			}
			return StringCell(r.Category)
		},
		"tactics": func(r domain.SalesRecord) Cell {
			if r.Tactics == "" {
				return MissingCell()
			}
			return StringCell(r.Tactics)
		},
	}
}

// SalesCSVHeader is the export column order.
var SalesCSVHeader = []string{
	"sales_date", "amount", "location_id", "employee_number",
	"employee_name", "sales_channel", "category", "tactics", "memo",
}

// SalesCSVRow renders one record in SalesCSVHeader order.
func SalesCSVRow(r domain.SalesRecord) []string {
	columns := SalesColumns()
	row := make([]string, 0, len(SalesCSVHeader))
	for _, name := range SalesCSVHeader {
		if name == "memo" {
			row = append(row, r.Memo)
			continue
		}
		row = append(row, columns[name](r).Text())
	}
	return row
}
