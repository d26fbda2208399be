package engine

import "github.com/liliang-cn/datagenie/internal/domain"

func chip(value, label string) domain.Chip {
	return domain.Chip{Value: &value, Label: label}
}

func noneChip(label string) domain.Chip {
	return domain.Chip{Value: nil, Label: label}
}

// FollowUpQuestions returns the fixed, ordered clarifying questions for an
// intent. Unrecognized intents return an empty list. The required flag is
// advisory; enforcement is a presentation concern.
func FollowUpQuestions(intent domain.Intent) []domain.FollowUpQuestion {
	switch intent {
	case domain.IntentRetail:
		return []domain.FollowUpQuestion{
			{
				ID:        "geography",
				Question:  "What suburb or SA2 area are you considering?",
				Type:      domain.QuestionText,
				AnswerKey: domain.KeyGeography,
				Required:  true,
			},
			{
				ID:       "catchment",
				Question: "What catchment area should we analyse?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("walk10", "10-min walk"),
					chip("drive10", "10-min drive"),
				},
				AnswerKey: domain.KeyCatchment,
				Required:  true,
			},
			{
				ID:       "focus",
				Question: "Target weekday workers or local residents?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("workers", "Workers"),
					chip("residents", "Residents"),
					chip("both", "Both"),
				},
				AnswerKey: domain.KeyFocus,
				Required:  true,
			},
			{
				ID:       "anchor",
				Question: "Near which anchor point (if any)?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("station", "Train/Tram Station"),
					chip("shopping", "Shopping Centre"),
					chip("university", "University/Hospital"),
					noneChip("None"),
				},
				AnswerKey: domain.KeyAnchor,
			},
		}

	case domain.IntentProperty:
		return []domain.FollowUpQuestion{
			{
				ID:        "stationName",
				Question:  "Which train station are you considering?",
				Type:      domain.QuestionText,
				AnswerKey: domain.KeyStationName,
				Required:  true,
			},
			{
				ID:       "targetMarket",
				Question: "Target market preference?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("owner", "Owner-occupier"),
					chip("renter", "Rental Investment"),
				},
				AnswerKey: domain.KeyTargetMarket,
				Required:  true,
			},
			{
				ID:       "horizon",
				Question: "Investment/purchase timeline?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("0-2", "0-2 years"),
					chip("2-4", "2-4 years"),
					chip("5+", "5+ years"),
				},
				AnswerKey: domain.KeyHorizon,
				Required:  true,
			},
			{
				ID:       "contextCheck",
				Question: "Include city-wide market context?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("true", "Yes"),
					chip("false", "No"),
				},
				AnswerKey: domain.KeyContextCheck,
			},
		}

	case domain.IntentSchool:
		return []domain.FollowUpQuestion{
			{
				ID:        "addressOrSuburb",
				Question:  "Home address or suburb?",
				Type:      domain.QuestionText,
				AnswerKey: domain.KeyAddressOrSuburb,
				Required:  true,
			},
			{
				ID:       "mode",
				Question: "Preferred travel mode and max time?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("walk", "Walking"),
					chip("bike", "Cycling"),
					chip("pt", "Public Transport"),
					chip("car", "Car"),
				},
				AnswerKey: domain.KeyMode,
				Required:  true,
			},
			{
				ID:        "maxMins",
				Question:  "Maximum one-way travel time (minutes)?",
				Type:      domain.QuestionNumber,
				AnswerKey: domain.KeyMaxMins,
				Required:  true,
			},
			{
				ID:       "supports",
				Question: "Special support or language needs?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("eal", "EAL/D Support"),
					chip("asd", "ASD Programs"),
					chip("extension", "Extension Programs"),
					chip("none", "None"),
				},
				AnswerKey: domain.KeySupports,
			},
			{
				ID:       "sector",
				Question: "School sector preference?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("government", "Government"),
					chip("catholic", "Catholic"),
					chip("independent", "Independent"),
				},
				AnswerKey: domain.KeySector,
			},
		}

	case domain.IntentGeneric:
		return []domain.FollowUpQuestion{
			{
				ID:       "audience",
				Question: "Who is your target audience?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("students", "Students"),
					chip("retirees", "Retirees"),
					chip("families", "Families"),
					chip("workers", "Workers"),
				},
				AnswerKey: domain.KeyAudience,
				Required:  true,
			},
			{
				ID:        "product",
				Question:  "What product or service are you offering?",
				Type:      domain.QuestionText,
				AnswerKey: domain.KeyProduct,
				Required:  true,
			},
			{
				ID:       "priceRange",
				Question: "Price range category?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("budget", "Budget"),
					chip("mid", "Mid-range"),
					chip("premium", "Premium"),
				},
				AnswerKey: domain.KeyPriceRange,
			},
			{
				ID:       "purpose",
				Question: "Primary analysis purpose?",
				Type:     domain.QuestionChips,
				Chips: []domain.Chip{
					chip("growth", "Market Growth"),
					chip("competition", "Competition Analysis"),
					chip("targeting", "Customer Targeting"),
				},
				AnswerKey: domain.KeyPurpose,
			},
		}

	default:
		return []domain.FollowUpQuestion{}
	}
}
