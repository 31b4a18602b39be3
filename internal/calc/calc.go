// Package calc holds the pure, stateless calculators over catalog rows.
package calc

import (
	"math"

	"github.com/example/nchub/internal/catalog"
)

// EstimateEffort returns consultant-days for a scoped assessment. Inputs are
// always catalog rows, so there is no validation path and no clamping.
func EstimateEffort(eco catalog.EcosystemType, depth catalog.AssessmentDepth, size catalog.SizeCategory) int {
	return int(math.Round(float64(eco.BaseEffort) * depth.Multiplier * size.Multiplier))
}

// SectorRisk is one relevant risk subcategory annotated with its parent
// category name.
type SectorRisk struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// RelevantRisks flattens every risk subcategory whose relevant sectors include
// the given sector, in catalog declaration order (category, then
// subcategory). Subcategories are sector-tagged uniquely, so no dedup is
// needed.
func RelevantRisks(sector string) []SectorRisk {
	risks := []SectorRisk{}
	for _, cat := range catalog.RiskCategories {
		for _, sub := range cat.Subcategories {
			for _, s := range sub.RelevantSectors {
				if s == sector {
					risks = append(risks, SectorRisk{Name: sub.Name, Category: cat.Name})
					break
				}
			}
		}
	}
	return risks
}
