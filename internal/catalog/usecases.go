package catalog

import "github.com/liliang-cn/datagenie/internal/domain"

var useCases = []domain.UseCase{
	{
		ID:           "uc1",
		Title:        "Mobile Repair Shop Location Strategy",
		Description:  "Used SEIFA + Census + CABEE to identify high-income, tech-savvy areas with low competition. Found Brunswick East had perfect demographics (young professionals, high income) with only 12 existing repair shops.",
		DatasetsUsed: []string{"seifa-2021", "census-2021", "cabee-2024"},
		Outcome:      "Sales +18% in first 3 months vs projections",
		Industry:     "Retail",
	},
	{
		ID:           "uc2",
		Title:        "Property Investment Near Station",
		Description:  "Combined RPPI trends with Building Approvals pipeline and Census demographics around Coburg Station. Identified 2-year development lag creating opportunity window before supply increase.",
		DatasetsUsed: []string{"rppi-2024", "building-approvals-2024", "census-2021", "gtfs-vic"},
		Outcome:      "Purchased at 15% below projected market peak",
		Industry:     "Property",
	},
	{
		ID:           "uc3",
		Title:        "School Catchment Analysis",
		Description:  "Used MySchool ICSEA data with Census demographics to identify best government schools supporting EAL/D students. Cross-referenced with GTFS for public transport accessibility.",
		DatasetsUsed: []string{"myschool-2024", "census-2021", "gtfs-vic"},
		Outcome:      "Found perfect school match within 20min PT commute",
		Industry:     "Education",
	},
	{
		ID:           "uc4",
		Title:        "Franchise Location Expansion",
		Description:  "Analyzed JTW data to understand daytime vs nighttime population flows. Combined with SEIFA to target areas with high worker influx during business hours.",
		DatasetsUsed: []string{"jtw-2021", "seifa-2021", "cabee-2024"},
		Outcome:      "Identified 3 high-potential locations with 40% higher foot traffic",
		Industry:     "Food & Beverage",
	},
	{
		ID:           "uc5",
		Title:        "Apartment Development Timing",
		Description:  "Used Building Approvals to assess development pipeline pressure. RPPI data showed market momentum. Census revealed target demographic concentration.",
		DatasetsUsed: []string{"building-approvals-2024", "rppi-2024", "census-2021"},
		Outcome:      "Delayed project 18 months, avoided market oversupply",
		Industry:     "Development",
	},
}

// UseCases returns the demo success stories in fixed order
func UseCases() []domain.UseCase {
	out := make([]domain.UseCase, len(useCases))
	copy(out, useCases)
	return out
}
