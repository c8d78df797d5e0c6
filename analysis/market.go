package analysis

import (
	"fmt"
	"strings"
)

const (
	CategoryFood      = "food"
	CategoryRetail    = "retail"
	CategoryTech      = "tech"
	CategoryEducation = "education"
	CategoryHealth    = "health"
	CategoryServices  = "services"
	CategoryOther     = "other"

	DensityHigh   = "high"
	DensityMedium = "medium"
	DensityLow    = "low"

	RiskHigh   = "high"
	RiskMedium = "medium"
	RiskLow    = "low"
)

const (
	baseDemandScore = 60

	highDensityThreshold   = 15
	mediumDensityThreshold = 5
)

// categoryKeywords maps a category to the substrings that select it. The
// first matching category in categoryOrder wins; everything else is "other".
var categoryKeywords = map[string][]string{
	CategoryFood:      {"cafe", "restaurant", "food", "bakery", "cloud kitchen", "tea", "coffee"},
	CategoryRetail:    {"store", "shop", "boutique", "retail", "mart", "grocery"},
	CategoryTech:      {"app", "software", "saas", "tech", "platform", "ai", "startup"},
	CategoryEducation: {"tuition", "coaching", "school", "academy", "course", "training"},
	CategoryHealth:    {"clinic", "gym", "fitness", "pharmacy", "wellness", "yoga"},
	CategoryServices:  {"salon", "repair", "laundry", "cleaning", "agency", "studio"},
}

var categoryOrder = []string{
	CategoryFood,
	CategoryRetail,
	CategoryTech,
	CategoryEducation,
	CategoryHealth,
	CategoryServices,
}

type Competitor struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
}

type AnalysisResult struct {
	Category           string   `json:"category"`
	DemandScore        int      `json:"demand_score"`
	DemandTrend        string   `json:"demand_trend"`
	DemandLabel        string   `json:"demand_label"`
	CompetitionDensity string   `json:"competition_density"`
	CompetitionInsight string   `json:"competition_insight"`
	RiskLevel          string   `json:"risk_level"`
	RiskFactors        []string `json:"risk_factors"`
	Suggestions        []string `json:"suggestions"`
	MarketSizeLabel    string   `json:"market_size_label"`
}

// Analyze derives a canned demand/competition/risk narrative from keyword
// category detection and competitor counts. It is deterministic for
// identical inputs; there is no model behind it, only templates.
func Analyze(domainText, locationText, budgetLevel string, competitors []Competitor) AnalysisResult {
	category := DetectCategory(domainText)
	density := CompetitionDensity(len(competitors))

	result := AnalysisResult{
		Category:           category,
		DemandScore:        demandScore(density),
		DemandTrend:        demandTrend(density),
		CompetitionDensity: density,
	}

	result.DemandLabel = demandLabel(result.DemandScore)
	result.CompetitionInsight = competitionInsight(category, locationText, len(competitors), density)
	result.RiskLevel, result.RiskFactors = riskProfile(category, budgetLevel, density)
	result.Suggestions = suggestions(category, density)
	result.MarketSizeLabel = marketSizeLabel(category)

	return result
}

// DetectCategory matches the business description against fixed keyword
// lists, case-insensitively. First matching category wins.
func DetectCategory(domainText string) string {
	text := strings.ToLower(domainText)

	for _, category := range categoryOrder {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(text, keyword) {
				return category
			}
		}
	}

	return CategoryOther
}

// CompetitionDensity tiers the competitor count with fixed thresholds.
func CompetitionDensity(competitorCount int) string {
	switch {
	case competitorCount > highDensityThreshold:
		return DensityHigh
	case competitorCount > mediumDensityThreshold:
		return DensityMedium
	default:
		return DensityLow
	}
}

func demandScore(density string) int {
	switch density {
	case DensityHigh:
		return baseDemandScore + 15
	case DensityMedium:
		return baseDemandScore + 10
	default:
		return baseDemandScore
	}
}

func demandTrend(density string) string {
	// a crowded market is read as proven demand, an empty one as unproven
	switch density {
	case DensityHigh:
		return "proven"
	case DensityMedium:
		return "growing"
	default:
		return "unproven"
	}
}

func demandLabel(score int) string {
	switch {
	case score >= 75:
		return "strong demand"
	case score >= 65:
		return "moderate demand"
	default:
		return "uncertain demand"
	}
}

func competitionInsight(category, locationText string, count int, density string) string {
	switch density {
	case DensityHigh:
		return fmt.Sprintf("%d direct competitors around %s make this a saturated %s market; differentiation is mandatory.", count, locationText, category)
	case DensityMedium:
		return fmt.Sprintf("%d competitors around %s leave room in the %s market for a focused entrant.", count, locationText, category)
	default:
		return fmt.Sprintf("Only %d competitors found around %s; either an open %s market or one without demand.", count, locationText, category)
	}
}

func riskProfile(category, budgetLevel, density string) (string, []string) {
	factors := make([]string, 0)

	level := RiskLow
	if density == DensityHigh {
		level = RiskMedium
		factors = append(factors, "saturated local market")
	}

	if strings.EqualFold(budgetLevel, "low") {
		if category == CategoryFood || category == CategoryRetail {
			level = RiskHigh
			factors = append(factors, "capital-heavy category on a low budget")
		} else {
			factors = append(factors, "thin runway for customer acquisition")
		}
	}

	if category == CategoryOther {
		factors = append(factors, "unclassified category, benchmarks unavailable")
	}

	if len(factors) == 0 {
		factors = append(factors, "no structural risk detected from available signals")
	}

	return level, factors
}

func suggestions(category, density string) []string {
	s := make([]string, 0)

	switch category {
	case CategoryFood:
		s = append(s, "Validate footfall at the exact street before signing a lease.")
	case CategoryRetail:
		s = append(s, "Start with a narrow inventory and expand by sell-through rate.")
	case CategoryTech:
		s = append(s, "Ship a landing page and measure signups before building.")
	case CategoryEducation:
		s = append(s, "Run a pilot batch at a discount to collect testimonials.")
	case CategoryHealth:
		s = append(s, "Check local licensing requirements before committing capital.")
	case CategoryServices:
		s = append(s, "Price against the top three local providers, not cost-plus.")
	default:
		s = append(s, "Talk to twenty potential customers before spending anything.")
	}

	if density == DensityHigh {
		s = append(s, "Pick one underserved niche the incumbents ignore.")
	}

	return s
}

func marketSizeLabel(category string) string {
	switch category {
	case CategoryFood, CategoryRetail:
		return "neighbourhood-scale"
	case CategoryTech:
		return "city-scale or larger"
	default:
		return "locality-scale"
	}
}
