package catalog

// EcosystemType is one selectable restoration habitat with its scoping
// parameters. BaseEffort is consultant-days for a full assessment of a
// medium-sized project before multipliers.
type EcosystemType struct {
	Name                  string `json:"name"`
	BaseEffort            int    `json:"baseEffort"`
	CarbonPotential       string `json:"carbonPotential"`
	BiodiversityPotential string `json:"biodiversityPotential"`
	WaterPotential        string `json:"waterPotential"`
	WCCEligible           bool   `json:"wccEligible"`
	PeatlandEligible      bool   `json:"peatlandEligible"`
	BNGPotential          string `json:"bngPotential"`
}

// AssessmentDepth scales effort by how far the assessment goes.
type AssessmentDepth struct {
	Name         string   `json:"name"`
	Multiplier   float64  `json:"multiplier"`
	Description  string   `json:"description"`
	Deliverables []string `json:"deliverables"`
}

// SizeCategory scales effort by project area.
type SizeCategory struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Typical    string  `json:"typical"`
}

// EcosystemTypes in declaration order. Inputs to the effort calculator are
// always one of these rows, never free-form.
var EcosystemTypes = []EcosystemType{
	{Name: "Native Woodland Creation", BaseEffort: 40, CarbonPotential: "High", BiodiversityPotential: "High", WaterPotential: "Medium", WCCEligible: true, PeatlandEligible: false, BNGPotential: "High"},
	{Name: "Ancient Woodland Restoration", BaseEffort: 60, CarbonPotential: "Medium", BiodiversityPotential: "Very High", WaterPotential: "Medium", WCCEligible: true, PeatlandEligible: false, BNGPotential: "Very High"},
	{Name: "Natural Regeneration", BaseEffort: 35, CarbonPotential: "Medium-High", BiodiversityPotential: "High", WaterPotential: "Medium", WCCEligible: true, PeatlandEligible: false, BNGPotential: "High"},
	{Name: "Peatland Restoration", BaseEffort: 55, CarbonPotential: "Very High", BiodiversityPotential: "High", WaterPotential: "Very High", WCCEligible: false, PeatlandEligible: true, BNGPotential: "High"},
	{Name: "Riparian Woodland", BaseEffort: 45, CarbonPotential: "Medium", BiodiversityPotential: "High", WaterPotential: "Very High", WCCEligible: true, PeatlandEligible: false, BNGPotential: "High"},
	{Name: "Species-rich Grassland", BaseEffort: 35, CarbonPotential: "Low", BiodiversityPotential: "High", WaterPotential: "Medium", WCCEligible: false, PeatlandEligible: false, BNGPotential: "Medium"},
	{Name: "Wetland Creation", BaseEffort: 50, CarbonPotential: "Medium", BiodiversityPotential: "Very High", WaterPotential: "Very High", WCCEligible: false, PeatlandEligible: false, BNGPotential: "Very High"},
}

var AssessmentDepths = []AssessmentDepth{
	{Name: "Desktop Screening", Multiplier: 0.3, Description: "GIS analysis, data review, high-level opportunity assessment", Deliverables: []string{"Opportunity map", "Data gap analysis", "Indicative feasibility"}},
	{Name: "Feasibility Study", Multiplier: 0.6, Description: "Site visit, stakeholder scoping, outline design, preliminary financials", Deliverables: []string{"Site assessment", "Outline design", "Carbon/BNG estimates", "Financial summary"}},
	{Name: "Full Assessment", Multiplier: 1.0, Description: "Detailed surveys, financial modelling, project design, stakeholder engagement", Deliverables: []string{"Baseline surveys", "Detailed design", "Carbon/BNG calculations", "Financial model", "Risk register"}},
	{Name: "Implementation Support", Multiplier: 1.5, Description: "Code registration, contractor management, monitoring setup", Deliverables: []string{"Code registration", "Contractor specs", "Monitoring protocol", "Verification support"}},
}

var SizeCategories = []SizeCategory{
	{Name: "Small (<50 ha)", Multiplier: 0.7, Typical: "Single farm, estate parcel"},
	{Name: "Medium (50-200 ha)", Multiplier: 1.0, Typical: "Multiple parcels, small estate"},
	{Name: "Large (200-500 ha)", Multiplier: 1.4, Typical: "Large estate, multi-stakeholder"},
	{Name: "Landscape (500+ ha)", Multiplier: 2.0, Typical: "Catchment-scale, multiple landowners"},
}

// EcosystemTypeByName returns the row with the given name, or nil.
func EcosystemTypeByName(name string) *EcosystemType {
	for i := range EcosystemTypes {
		if EcosystemTypes[i].Name == name {
			return &EcosystemTypes[i]
		}
	}
	return nil
}

// AssessmentDepthByName returns the row with the given name, or nil.
func AssessmentDepthByName(name string) *AssessmentDepth {
	for i := range AssessmentDepths {
		if AssessmentDepths[i].Name == name {
			return &AssessmentDepths[i]
		}
	}
	return nil
}

// SizeCategoryByName returns the row with the given name, or nil.
func SizeCategoryByName(name string) *SizeCategory {
	for i := range SizeCategories {
		if SizeCategories[i].Name == name {
			return &SizeCategories[i]
		}
	}
	return nil
}
