package catalog

// PolicyEntry is one item of the UK or global policy library.
type PolicyEntry struct {
	Name        string   `json:"name"`
	FullName    string   `json:"fullName,omitempty"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	KeyPoints   []string `json:"keyPoints"`
}

var UKPolicies = []PolicyEntry{
	{
		Name:        "Environment Act 2021",
		Category:    "Primary Legislation",
		Status:      "In force",
		Description: "Landmark post-Brexit environmental legislation establishing new governance and legally binding nature targets.",
		KeyPoints:   []string{"Biodiversity Net Gain (10% mandatory)", "Local Nature Recovery Strategies", "Species Conservation Strategies", "Conservation Covenants", "Office for Environmental Protection", "Legally binding environmental targets"},
	},
	{
		Name:        "Environmental Improvement Plan 2023",
		Category:    "Policy Framework",
		Status:      "Current government plan",
		Description: "First revision of 25 Year Environment Plan, setting out how government will deliver targets.",
		KeyPoints:   []string{"Clean air", "Clean water", "Thriving wildlife", "Reduced hazards", "Resource efficiency", "Enhanced beauty"},
	},
	{
		Name:        "Agricultural Transition",
		Category:    "Agricultural Policy",
		Status:      "In transition 2021-2027",
		Description: "Post-Brexit transition from Basic Payment Scheme to Environmental Land Management paying for outcomes.",
		KeyPoints:   []string{"Sustainable Farming Incentive", "Countryside Stewardship", "Landscape Recovery"},
	},
	{
		Name:        "England Trees Action Plan",
		Category:    "Sectoral Strategy",
		Status:      "Published 2021",
		Description: "Plan to treble tree planting rates and increase woodland cover to 16.5% by 2050.",
		KeyPoints:   []string{"30,000 ha/year planting", "16.5% cover by 2050", "England Woodland Creation Offer", "Nature for Climate Fund"},
	},
	{
		Name:        "England Peat Action Plan",
		Category:    "Sectoral Strategy",
		Status:      "Published 2021",
		Description: "Strategy to restore peatlands and ban horticultural peat.",
		KeyPoints:   []string{"35,000 ha restored by 2025", "Peat sale ban by 2030", "Nature for Climate Peatland Grant", "Peatland Code"},
	},
	{
		Name:        "Local Nature Recovery Strategies",
		Category:    "Spatial Planning",
		Status:      "In development, due 2024-25",
		Description: "Statutory requirement for all areas to have LNRS identifying nature recovery priorities.",
		KeyPoints:   []string{"Statement of priorities", "Local habitat map", "Opportunities for enhancement", "Species priorities"},
	},
	{
		Name:        "WINEP",
		FullName:    "Water Industry National Environment Programme",
		Category:    "Regulatory Programme",
		Status:      "PR24 cycle 2025-2030",
		Description: "Environmental improvements water companies must deliver, increasingly via nature-based solutions.",
		KeyPoints:   []string{"Catchment management", "Natural flood management", "Wetland treatment", "Peatland restoration"},
	},
}

var GlobalPolicies = []PolicyEntry{
	{
		Name:        "Paris Agreement",
		Category:    "Climate Treaty",
		Status:      "In force since 2016",
		Description: "International treaty to limit warming to 1.5°C above pre-industrial levels.",
		KeyPoints:   []string{"Nationally Determined Contributions", "1.5°C goal", "Net zero by mid-century", "Climate finance", "Global Stocktake"},
	},
	{
		Name:        "CBD",
		FullName:    "Convention on Biological Diversity",
		Category:    "Biodiversity Treaty",
		Status:      "In force since 1993",
		Description: "Treaty for conservation, sustainable use, and fair benefit sharing.",
		KeyPoints:   []string{"Conservation", "Sustainable use", "Benefit sharing", "National strategies"},
	},
	{
		Name:        "UN Decade on Ecosystem Restoration",
		Category:    "UN Initiative",
		Status:      "2021-2030",
		Description: "UN decade to prevent, halt and reverse ecosystem degradation worldwide.",
		KeyPoints:   []string{"Restore 350 million ha by 2030", "Generate $9 trillion in ecosystem services", "Remove 26 Gt carbon"},
	},
	{
		Name:        "EU CSRD",
		FullName:    "Corporate Sustainability Reporting Directive",
		Category:    "Disclosure Regulation",
		Status:      "Phased implementation 2024-2028",
		Description: "Requires large companies to report on sustainability including biodiversity.",
		KeyPoints:   []string{"ESRS E4 biodiversity standard", "Phased scope from large public entities to listed SMEs"},
	},
	{
		Name:        "EU Deforestation Regulation",
		Category:    "Trade Regulation",
		Status:      "In force December 2024",
		Description: "Products sold in EU must be deforestation-free.",
		KeyPoints:   []string{"Due diligence", "Traceability to plot", "Cut-off: December 2020"},
	},
	{
		Name:        "EU Nature Restoration Law",
		Category:    "Biodiversity Regulation",
		Status:      "Adopted 2024",
		Description: "First continent-wide law with binding restoration targets.",
		KeyPoints:   []string{"Restoration measures on 20% of EU land and sea by 2030", "Restore 30% peatlands by 2030", "3 billion additional trees"},
	},
	{
		Name:        "ISSB",
		FullName:    "International Sustainability Standards Board",
		Category:    "Accounting Standards",
		Status:      "S1 and S2 in force 2024, nature in development",
		Description: "Global baseline for sustainability disclosure.",
		KeyPoints:   []string{"IFRS S1 general disclosure", "IFRS S2 climate disclosure", "Nature standard building on TNFD"},
	},
}
