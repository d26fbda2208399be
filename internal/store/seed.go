package store

import (
	"time"

	"github.com/liliang-cn/datagenie/internal/domain"
)

func daysAgo(n int) int64 {
	return time.Now().Add(-time.Duration(n) * 24 * time.Hour).UnixMilli()
}

func seedReviews() []domain.Review {
	return []domain.Review{
		{
			DatasetID: "seifa-2021",
			Stars:     5,
			Title:     "Essential for demographic analysis",
			Body:      "Perfect for understanding socio-economic context. Easy join keys and comprehensive coverage.",
			Author:    "DataAnalyst_Mel",
			Date:      daysAgo(5),
		},
		{
			DatasetID: "census-2021",
			Stars:     5,
			Title:     "Gold standard demographics",
			Body:      "The go-to source for population insights. Preview tables are exactly what you need.",
			Author:    "UrbanPlanner",
			Date:      daysAgo(12),
		},
		{
			DatasetID: "cabee-2024",
			Stars:     4,
			Title:     "Great for competition analysis",
			Body:      "ANZSIC filtering works perfectly. Would love more granular geographic breakdown.",
			Author:    "RetailConsultant",
			Date:      daysAgo(3),
		},
		{
			DatasetID: "building-approvals-2024",
			Stars:     4,
			Title:     "Useful pipeline insight",
			Body:      "Good for timing analysis. Data is current and SA2 level detail is helpful.",
			Author:    "PropertyDev",
			Date:      daysAgo(18),
		},
		{
			DatasetID: "rppi-2024",
			Stars:     3,
			Title:     "City-level context only",
			Body:      "Helpful for broad trends but limited geography. Needs more granular data.",
			Author:    "Economist",
			Date:      daysAgo(25),
		},
		{
			DatasetID: "jtw-2021",
			Stars:     5,
			Title:     "Brilliant for retail location",
			Body:      "Day vs night worker patterns are exactly what we needed for our store placement.",
			Author:    "FranchiseOwner",
			Date:      daysAgo(8),
		},
		{
			DatasetID: "gtfs-vic",
			Stars:     3,
			Title:     "External but valuable",
			Body:      "GTFS integration requires API setup but transit insights are worth it.",
			Author:    "TransportAnalyst",
			Date:      daysAgo(15),
		},
		{
			DatasetID: "myschool-2024",
			Stars:     4,
			Title:     "Comprehensive school data",
			Body:      "ICSEA and support filters work well. External data source but reliable.",
			Author:    "ParentResearcher",
			Date:      daysAgo(22),
		},
	}
}

func seedDownloads() map[string]int {
	return map[string]int{
		"seifa-2021":              15234,
		"census-2021":             18976,
		"cabee-2024":              8743,
		"building-approvals-2024": 6521,
		"rppi-2024":               4532,
		"jtw-2021":                9876,
		"gtfs-vic":                2341,
		"myschool-2024":           3456,
	}
}

func seedRatings() map[string]domain.Rating {
	return map[string]domain.Rating{
		"seifa-2021":              {Sum: 23, Count: 5},
		"census-2021":             {Sum: 22, Count: 5},
		"cabee-2024":              {Sum: 16, Count: 4},
		"building-approvals-2024": {Sum: 15, Count: 4},
		"rppi-2024":               {Sum: 9, Count: 3},
		"jtw-2021":                {Sum: 23, Count: 5},
		"gtfs-vic":                {Sum: 9, Count: 3},
		"myschool-2024":           {Sum: 15, Count: 4},
	}
}

func seedState() *domain.AppState {
	return &domain.AppState{
		Problems:  []*domain.ProblemSession{},
		Reviews:   seedReviews(),
		Downloads: seedDownloads(),
		Ratings:   seedRatings(),
	}
}
