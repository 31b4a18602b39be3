// Package catalog holds the read-only reference tables consumed by the views
// and calculators: frameworks, policy libraries, terminology, project-scoping
// parameters, risk categories, and the map layer/region declarations.
// Declaration order is meaningful and preserved everywhere.
package catalog

// Resource is an external reference link.
type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Framework is one nature-related framework or standard.
type Framework struct {
	Key            string     `json:"key"`
	FullName       string     `json:"fullName"`
	Category       string     `json:"category"`
	Status         string     `json:"status"`
	Description    string     `json:"description"`
	KeyComponents  []string   `json:"keyComponents"`
	RelevantTo     []string   `json:"relevantTo"`
	LinkedConcepts []string   `json:"linkedConcepts"`
	Resources      []Resource `json:"resources,omitempty"`
}

var Frameworks = []Framework{
	{
		Key:            "TNFD",
		FullName:       "Taskforce on Nature-related Financial Disclosures",
		Category:       "Disclosure Framework",
		Status:         "Final recommendations published September 2023",
		Description:    "Voluntary framework for organisations to report and act on nature-related dependencies, impacts, risks and opportunities.",
		KeyComponents:  []string{"LEAP Approach", "14 Recommended Disclosures", "Sector-specific Guidance", "Core Global Metrics", "Additional Disclosure Metrics"},
		RelevantTo:     []string{"Corporates", "Financial Institutions", "Investors", "Asset Managers", "Banks", "Insurance Companies"},
		LinkedConcepts: []string{"Natural Capital Protocol", "SBTN", "Double Materiality", "CSRD"},
		Resources: []Resource{
			{Name: "TNFD Recommendations", URL: "https://tnfd.global/recommendations-of-the-tnfd/"},
			{Name: "LEAP Guidance", URL: "https://tnfd.global/publication/additional-guidance-on-the-leap-approach/"},
			{Name: "Sector Guidance", URL: "https://tnfd.global/publication/sector-guidance/"},
		},
	},
	{
		Key:            "SBTN",
		FullName:       "Science Based Targets Network",
		Category:       "Target-setting Framework",
		Status:         "Land and freshwater targets launched 2023",
		Description:    "Provides companies with science-based targets for nature, enabling alignment with Earth's limits and societal goals.",
		KeyComponents:  []string{"AR3T Framework", "Freshwater Targets", "Land Targets", "Step 1-5 Process", "Materiality Screening"},
		RelevantTo:     []string{"Corporates", "Supply Chain Managers", "Sustainability Teams", "Investors"},
		LinkedConcepts: []string{"TNFD", "Mitigation Hierarchy", "Biodiversity Net Gain", "GBF"},
		Resources: []Resource{
			{Name: "SBTN Methods", URL: "https://sciencebasedtargetsnetwork.org/resources/"},
		},
	},
	{
		Key:            "Natural Capital Protocol",
		FullName:       "Natural Capital Protocol",
		Category:       "Valuation Framework",
		Status:         "Published 2016, widely adopted",
		Description:    "Standardised framework for identifying, measuring and valuing organisational impacts and dependencies on natural capital.",
		KeyComponents:  []string{"Frame Stage", "Scope Stage", "Measure & Value Stage", "Apply Stage", "9 Steps", "Sector Guides"},
		RelevantTo:     []string{"Corporates", "Consultants", "Investors", "Decision-makers"},
		LinkedConcepts: []string{"SEEA-EA", "Ecosystem Services", "TEV", "CICES"},
		Resources: []Resource{
			{Name: "Protocol Document", URL: "https://capitalscoalition.org/capitals-approach/natural-capital-protocol/"},
		},
	},
	{
		Key:            "Woodland Carbon Code",
		FullName:       "UK Woodland Carbon Code",
		Category:       "Carbon Standard",
		Status:         "Operational since 2011, Version 2.2 current",
		Description:    "The UK's voluntary quality assurance standard for woodland creation projects. Government-backed and independently verified.",
		KeyComponents:  []string{"Project Registration", "Validation", "Verification", "PIU/WCU Issuance", "Additionality Tests", "Buffer Pool"},
		RelevantTo:     []string{"Landowners", "Carbon Buyers", "Project Developers", "Corporates"},
		LinkedConcepts: []string{"Peatland Code", "Carbon Credits", "MRV", "UK Land Carbon Registry"},
		Resources: []Resource{
			{Name: "WCC Website", URL: "https://woodlandcarboncode.org.uk/"},
			{Name: "UK Land Carbon Registry", URL: "https://www.woodlandcarboncode.org.uk/uk-land-carbon-registry"},
		},
	},
	{
		Key:            "Peatland Code",
		FullName:       "UK Peatland Code",
		Category:       "Carbon Standard",
		Status:         "Version 2.0 launched 2023",
		Description:    "Voluntary certification standard for UK peatland restoration projects, generating Peatland Carbon Units for emissions reductions.",
		KeyComponents:  []string{"Baseline Assessment", "Condition Assessment", "Project Design", "Validation", "Verification", "30+ year Monitoring"},
		RelevantTo:     []string{"Landowners", "Carbon Buyers", "Water Companies", "Conservation NGOs"},
		LinkedConcepts: []string{"Woodland Carbon Code", "Water Quality Credits", "Ecosystem Services"},
		Resources: []Resource{
			{Name: "Peatland Code Website", URL: "https://www.iucn-uk-peatlandprogramme.org/peatland-code"},
		},
	},
	{
		Key:            "Biodiversity Net Gain",
		FullName:       "UK Biodiversity Net Gain (BNG)",
		Category:       "Regulatory Framework",
		Status:         "Mandatory from February 2024",
		Description:    "Mandatory requirement under Environment Act 2021 for developments in England to deliver 10% biodiversity improvement.",
		KeyComponents:  []string{"Defra Metric 4.0", "Habitat Units", "Hedgerow Units", "Watercourse Units", "30-year Duration", "Biodiversity Gain Plan"},
		RelevantTo:     []string{"Developers", "Local Planning Authorities", "Landowners", "Ecologists"},
		LinkedConcepts: []string{"Defra Metric", "Habitat Banking", "Mitigation Hierarchy", "Environment Act", "LNRS"},
		Resources: []Resource{
			{Name: "BNG Guidance", URL: "https://www.gov.uk/guidance/biodiversity-net-gain"},
		},
	},
	{
		Key:            "GBF",
		FullName:       "Kunming-Montreal Global Biodiversity Framework",
		Category:       "International Policy",
		Status:         "Adopted December 2022",
		Description:    "Global agreement setting targets to halt and reverse biodiversity loss by 2030, with vision of living in harmony with nature by 2050.",
		KeyComponents:  []string{"4 Goals for 2050", "23 Targets for 2030", "National Biodiversity Strategies", "Monitoring Framework", "Resource Mobilisation"},
		RelevantTo:     []string{"Governments", "Policy Makers", "Corporates", "NGOs", "Investors"},
		LinkedConcepts: []string{"TNFD", "SBTN", "CBD", "30x30", "Nature-positive"},
		Resources: []Resource{
			{Name: "GBF Full Text", URL: "https://www.cbd.int/gbf/"},
		},
	},
	{
		Key:            "SEEA-EA",
		FullName:       "System of Environmental-Economic Accounting - Ecosystem Accounting",
		Category:       "Accounting Standard",
		Status:         "UN adopted 2021",
		Description:    "International statistical standard for measuring ecosystem extent, condition, services, and monetary values compatible with national accounts.",
		KeyComponents:  []string{"Ecosystem Extent Accounts", "Ecosystem Condition Accounts", "Ecosystem Services Accounts", "Monetary Accounts"},
		RelevantTo:     []string{"Governments", "Statistical Agencies", "Policy Makers", "Researchers"},
		LinkedConcepts: []string{"Natural Capital Protocol", "CICES", "Ecosystem Services", "National Accounts"},
		Resources: []Resource{
			{Name: "SEEA-EA Manual", URL: "https://seea.un.org/ecosystem-accounting"},
		},
	},
}

// FrameworkByKey returns the framework with the given key, or nil.
func FrameworkByKey(key string) *Framework {
	for i := range Frameworks {
		if Frameworks[i].Key == key {
			return &Frameworks[i]
		}
	}
	return nil
}
