package extract

import (
	"strings"

	"github.com/rmehta/clauseguard/internal/model"
)

// indianLawKeywords are the fixed jurisdiction/law reference markers
var indianLawKeywords = []string{
	"Indian Contract Act",
	"Companies Act",
	"Labour Laws",
	"GST",
	"jurisdiction",
	"governing law",
	"Indian courts",
}

// CheckCompliance scans the full contract text for Indian-law reference markers
func CheckCompliance(text string) model.ComplianceResult {
	lower := strings.ToLower(text)

	var found []string
	for _, keyword := range indianLawKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			found = append(found, keyword)
		}
	}

	hasJurisdiction := strings.Contains(lower, "jurisdiction") || strings.Contains(lower, "governing law")
	hasIndianReference := strings.Contains(lower, "india") || strings.Contains(lower, "indian")

	return model.ComplianceResult{
		HasComplianceIndicators: len(found) > 0,
		KeywordsFound:           found,
		HasJurisdictionClause:   hasJurisdiction,
		HasIndianReference:      hasIndianReference,
		ComplianceScore:         len(found),
	}
}
