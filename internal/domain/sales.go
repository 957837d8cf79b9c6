package domain

import "time"

// Closed-set codes used by the sales data service. Values arrive verbatim
// from the external API and are validated before submission.
const (
	ChannelSupermarket = "SM"
	ChannelHomeCenter  = "HC"
	ChannelConvenience = "CVS"
	ChannelDrugstore   = "DRUG"
	ChannelECommerce   = "EC"
)

const (
	CategoryDrink   = "飲料"
	CategoryAlcohol = "酒類"
)

const (
	TacticsFlyer   = "チラシ"
	TacticsEndCap  = "エンド"
	TacticsPlanned = "企画"
)

var (
	SalesChannels = []string{ChannelSupermarket, ChannelHomeCenter, ChannelConvenience, ChannelDrugstore, ChannelECommerce}
	Categories    = []string{CategoryDrink, CategoryAlcohol}
	Tactics       = []string{TacticsFlyer, TacticsEndCap, TacticsPlanned}
)

// Location identifiers as stored by the sales data service.
const (
	LocationKanto    = 0
	LocationHokkaido = 1
	LocationTokai    = 2
	LocationKinki    = 3
	LocationChugoku  = 4
	LocationKyushu   = 5
)

var LocationCodes = map[int]string{
	LocationKanto:    "KAT",
	LocationHokkaido: "HOK",
	LocationTokai:    "TOK",
	LocationKinki:    "KIN",
	LocationChugoku:  "CHU",
	LocationKyushu:   "KYU",
}

// SalesRecord is one reported sale as served by the sales data service.
// Records are immutable once created; this API only ever holds read-only
// copies fetched per request.
type SalesRecord struct {
	ID             int       `json:"id,omitempty"`
	SalesDate      time.Time `json:"-"`
	Amount         int64     `json:"amount"`
	LocationID     int       `json:"location_id"`
	EmployeeNumber int       `json:"employee_number"`
	EmployeeName   string    `json:"employee_name,omitempty"`
	SalesChannel   string    `json:"sales_channel"`
	Category       string    `json:"category"`
	Tactics        string    `json:"tactics"`
	Memo           string    `json:"memo,omitempty"`
}

// SalesDateString returns the calendar date in the wire format (YYYY-MM-DD).
func (r SalesRecord) SalesDateString() string {
	return r.SalesDate.Format(time.DateOnly)
}

// NewSalesReport is the payload for submitting a new report. Submission is
// an unconditional insert; there is no update path.
type NewSalesReport struct {
	SalesDate      string `json:"sales_date"`
	Amount         int64  `json:"amount"`
	LocationID     int    `json:"location_id"`
	EmployeeNumber int    `json:"employee_number"`
	SalesChannel   string `json:"sales_channel"`
	Category       string `json:"category"`
	Tactics        string `json:"tactics"`
	Memo           string `json:"memo,omitempty"`
}

// ValidSalesChannel reports whether code belongs to the channel enum.
func ValidSalesChannel(code string) bool {
	return contains(SalesChannels, code)
}

func ValidCategory(code string) bool {
	return contains(Categories, code)
}

func ValidTactics(code string) bool {
	return contains(Tactics, code)
}

func ValidLocationID(id int) bool {
	_, ok := LocationCodes[id]
	return ok
}

func contains(set []string, code string) bool {
	for _, c := range set {
		if c == code {
			return true
		}
	}
	return false
}
