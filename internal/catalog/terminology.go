package catalog

// TermEntry is one glossary item of the built-in terminology library.
type TermEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Framework  string `json:"framework"`
	Difficulty string `json:"difficulty"`
}

var Terminology = []TermEntry{
	{Term: "Ecosystem Services", Definition: "Benefits from ecosystems: provisioning (food, water), regulating (climate, water quality), cultural (recreation), supporting (nutrient cycling).", Framework: "Core Concept", Difficulty: "Beginner"},
	{Term: "Natural Capital", Definition: "Stock of natural assets (air, water, soil, biodiversity) yielding ecosystem service flows over time.", Framework: "Core Concept", Difficulty: "Beginner"},
	{Term: "Nature-positive", Definition: "Halting and reversing nature loss by 2030, full recovery by 2050. The nature equivalent of net zero.", Framework: "Policy", Difficulty: "Beginner"},
	{Term: "Double Materiality", Definition: "Assessing how nature affects the organisation AND how the organisation affects nature.", Framework: "TNFD", Difficulty: "Intermediate"},
	{Term: "Dependency", Definition: "Organisation's reliance on nature - clean water, pollination, stable climate, etc.", Framework: "TNFD", Difficulty: "Beginner"},
	{Term: "Impact", Definition: "Effect of activities on nature - positive (restoration) or negative (pollution, conversion).", Framework: "TNFD", Difficulty: "Beginner"},
	{Term: "LEAP Approach", Definition: "TNFD assessment: Locate (interface), Evaluate (dependencies/impacts), Assess (risks), Prepare (respond/report).", Framework: "TNFD", Difficulty: "Intermediate"},
	{Term: "Physical Risk", Definition: "Direct risks from nature degradation - water scarcity, soil degradation, flooding, pollinator loss.", Framework: "TNFD", Difficulty: "Intermediate"},
	{Term: "Transition Risk", Definition: "Risks from shift to nature-positive economy - policy, consumer preferences, technology, reputation.", Framework: "TNFD", Difficulty: "Intermediate"},
	{Term: "Systemic Risk", Definition: "Risks from collapse of natural systems underpinning economic activity.", Framework: "TNFD", Difficulty: "Advanced"},
	{Term: "Mitigation Hierarchy", Definition: "Avoid → Minimise → Restore → Offset. Higher steps take priority.", Framework: "SBTN", Difficulty: "Intermediate"},
	{Term: "AR3T Framework", Definition: "SBTN actions: Avoid, Reduce, Regenerate & Restore, Transform.", Framework: "SBTN", Difficulty: "Intermediate"},
	{Term: "Additionality", Definition: "Would outcome happen without intervention? Credits must show project wouldn't occur otherwise.", Framework: "Carbon Standards", Difficulty: "Advanced"},
	{Term: "Permanence", Definition: "Will carbon stay stored / habitat persist? Risk of reversal must be managed.", Framework: "Carbon Standards", Difficulty: "Intermediate"},
	{Term: "Leakage", Definition: "Displacement of harmful activities elsewhere due to project.", Framework: "Carbon Standards", Difficulty: "Advanced"},
	{Term: "MRV", Definition: "Measurement, Reporting, Verification - tracking and validating outcomes.", Framework: "Carbon Standards", Difficulty: "Intermediate"},
	{Term: "Baseline", Definition: "Starting condition against which change is measured.", Framework: "Carbon Standards", Difficulty: "Beginner"},
	{Term: "PIU", Definition: "Pending Issuance Unit - future projected sequestration. Carries delivery risk.", Framework: "Woodland Carbon Code", Difficulty: "Intermediate"},
	{Term: "WCU", Definition: "Woodland Carbon Unit - verified, issued credit representing delivered sequestration.", Framework: "Woodland Carbon Code", Difficulty: "Intermediate"},
	{Term: "PCU", Definition: "Peatland Carbon Unit - verified unit from peatland restoration.", Framework: "Peatland Code", Difficulty: "Intermediate"},
	{Term: "Buffer Pool", Definition: "Units withheld as insurance against reversal. Typically 15-20%.", Framework: "Carbon Standards", Difficulty: "Intermediate"},
	{Term: "Habitat Units", Definition: "BNG metric: Area × Distinctiveness × Condition × Strategic Significance.", Framework: "BNG", Difficulty: "Intermediate"},
	{Term: "Distinctiveness", Definition: "Relative biodiversity value. Very Low to Very High scale.", Framework: "BNG", Difficulty: "Intermediate"},
	{Term: "Strategic Significance", Definition: "BNG multiplier for LNRS priority areas.", Framework: "BNG", Difficulty: "Advanced"},
	{Term: "Stacking", Definition: "Selling multiple credits from same land (carbon + biodiversity + water).", Framework: "Nature Markets", Difficulty: "Advanced"},
	{Term: "Bundling", Definition: "Combining multiple services into single payment.", Framework: "Nature Markets", Difficulty: "Advanced"},
	{Term: "SSSI", Definition: "Site of Special Scientific Interest - legally protected UK conservation site.", Framework: "UK Policy", Difficulty: "Beginner"},
	{Term: "Ancient Woodland", Definition: "Woodland existing since 1600 (Eng/Wales) or 1750 (Scotland). Irreplaceable.", Framework: "UK Conservation", Difficulty: "Beginner"},
	{Term: "LNRS", Definition: "Local Nature Recovery Strategy - mapping nature recovery priorities.", Framework: "UK Policy", Difficulty: "Intermediate"},
	{Term: "ELM", Definition: "Environmental Land Management - post-Brexit farm payments for outcomes.", Framework: "UK Policy", Difficulty: "Intermediate"},
	{Term: "Natural Regeneration", Definition: "Allowing woodland to establish from natural seed sources.", Framework: "Restoration", Difficulty: "Beginner"},
	{Term: "Catchment-scale", Definition: "Planning at river catchment level for landscape connectivity.", Framework: "Landscape Planning", Difficulty: "Intermediate"},
}
