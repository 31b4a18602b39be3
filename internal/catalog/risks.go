package catalog

// RiskSubcategory is one nature-related risk, tagged with the sectors it is
// relevant to.
type RiskSubcategory struct {
	Name            string   `json:"name"`
	RelevantSectors []string `json:"relevantSectors"`
}

// RiskCategory groups subcategories under a TNFD risk class.
type RiskCategory struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Subcategories []RiskSubcategory `json:"subcategories"`
}

// RiskCategories in declaration order; the risk screener walks them in this
// order and preserves it.
var RiskCategories = []RiskCategory{
	{
		Name:        "Physical Risks",
		Description: "Direct risks from nature degradation",
		Subcategories: []RiskSubcategory{
			{Name: "Water scarcity", RelevantSectors: []string{"Agriculture", "Water Utilities", "Manufacturing", "Food & Beverage"}},
			{Name: "Soil degradation", RelevantSectors: []string{"Agriculture", "Construction", "Food & Beverage"}},
			{Name: "Pollinator decline", RelevantSectors: []string{"Agriculture", "Food & Beverage", "Cosmetics"}},
			{Name: "Flooding", RelevantSectors: []string{"Insurance", "Real Estate", "Infrastructure", "Utilities"}},
			{Name: "Raw material scarcity", RelevantSectors: []string{"Manufacturing", "Pharmaceuticals", "Textiles"}},
		},
	},
	{
		Name:        "Transition Risks",
		Description: "Risks from shift to nature-positive economy",
		Subcategories: []RiskSubcategory{
			{Name: "Regulatory change", RelevantSectors: []string{"Construction", "Agriculture", "Retail", "Finance"}},
			{Name: "Consumer preferences", RelevantSectors: []string{"Food & Beverage", "Fashion", "Tourism", "Retail"}},
			{Name: "Investor requirements", RelevantSectors: []string{"All listed", "Finance", "Real Estate"}},
			{Name: "Supply chain due diligence", RelevantSectors: []string{"Retail", "Manufacturing", "Food & Beverage"}},
			{Name: "Nature pricing", RelevantSectors: []string{"Energy", "Transport", "Heavy Industry"}},
		},
	},
	{
		Name:        "Systemic Risks",
		Description: "Risks from natural system collapse",
		Subcategories: []RiskSubcategory{
			{Name: "Ecosystem collapse", RelevantSectors: []string{"Agriculture", "Fisheries", "Tourism", "Insurance"}},
			{Name: "Tipping points", RelevantSectors: []string{"Insurance", "Finance", "Infrastructure"}},
			{Name: "Biodiversity cascade", RelevantSectors: []string{"Pharmaceuticals", "Agriculture", "Biotechnology"}},
		},
	},
}

// Sectors selectable in the risk screener.
var Sectors = []string{
	"Agriculture", "Water Utilities", "Construction", "Food & Beverage",
	"Finance", "Real Estate", "Retail", "Manufacturing", "Pharmaceuticals",
	"Energy", "Transport", "Tourism", "Forestry", "Mining", "Insurance",
}
