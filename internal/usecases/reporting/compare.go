package reporting

import (
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/pkg/utils"
)

// Compare computes the signed percentage delta between a current-period total
// and a prior-period total, rounded to one decimal place. PercentChange stays
// nil when the prior total is zero: an empty prior period offers no meaningful
// comparison, which callers must render as absent rather than 0%.
func Compare(current, prior int64) domain.ComparisonResult {
	result := domain.ComparisonResult{
		CurrentTotal: current,
		PriorTotal:   prior,
	}

	if prior <= 0 {
		return result
	}

	change := utils.RoundWithOneDecimalPlace(float64(current-prior) / float64(prior) * 100)
	result.PercentChange = &change

	return result
}
