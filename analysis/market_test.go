package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCategory(t *testing.T) {
	assert.Equal(t, CategoryFood, DetectCategory("Cafe in HSR Layout"))
	assert.Equal(t, CategoryFood, DetectCategory("CLOUD KITCHEN for biryani"))
	assert.Equal(t, CategoryRetail, DetectCategory("stationery shop near college"))
	assert.Equal(t, CategoryTech, DetectCategory("B2B SaaS platform"))
	assert.Equal(t, CategoryEducation, DetectCategory("NEET coaching centre"))
	assert.Equal(t, CategoryHealth, DetectCategory("24x7 gym"))
	assert.Equal(t, CategoryServices, DetectCategory("two wheeler repair"))
	assert.Equal(t, CategoryOther, DetectCategory("something entirely different"))
}

func TestDetectCategoryFirstMatchWins(t *testing.T) {
	// "cafe" (food) appears in the list before "app" (tech)
	assert.Equal(t, CategoryFood, DetectCategory("an app for cafe owners"))
}

func TestCompetitionDensity(t *testing.T) {
	assert.Equal(t, DensityLow, CompetitionDensity(0))
	assert.Equal(t, DensityLow, CompetitionDensity(5))
	assert.Equal(t, DensityMedium, CompetitionDensity(6))
	assert.Equal(t, DensityMedium, CompetitionDensity(15))
	assert.Equal(t, DensityHigh, CompetitionDensity(16))
}

func TestAnalyzeDeterministic(t *testing.T) {
	competitors := []Competitor{
		{Name: "Third Wave", Rating: 4.4, Reviews: 890},
		{Name: "Blue Tokai", Rating: 4.5, Reviews: 1200},
		{Name: "Local Darshini", Rating: 4.1, Reviews: 300},
	}

	first := Analyze("Cafe in HSR Layout", "Bengaluru", "low", competitors)
	second := Analyze("Cafe in HSR Layout", "Bengaluru", "low", competitors)

	assert.Equal(t, first, second)
	assert.Equal(t, CategoryFood, first.Category)
	assert.Equal(t, DensityLow, first.CompetitionDensity)
}

func TestAnalyzeLowBudgetFoodIsHighRisk(t *testing.T) {
	result := Analyze("cafe", "Bengaluru", "low", nil)
	assert.Equal(t, RiskHigh, result.RiskLevel)
	assert.NotEmpty(t, result.RiskFactors)
}

func TestAnalyzeCrowdedMarket(t *testing.T) {
	competitors := make([]Competitor, 20)
	result := Analyze("SaaS platform", "Bengaluru", "medium", competitors)

	assert.Equal(t, DensityHigh, result.CompetitionDensity)
	assert.Equal(t, "proven", result.DemandTrend)
	assert.Equal(t, RiskMedium, result.RiskLevel)
	assert.Contains(t, result.RiskFactors, "saturated local market")
}

func TestAnalyzeFieldsAlwaysPopulated(t *testing.T) {
	result := Analyze("", "", "", nil)

	assert.Equal(t, CategoryOther, result.Category)
	assert.NotEmpty(t, result.DemandLabel)
	assert.NotEmpty(t, result.CompetitionInsight)
	assert.NotEmpty(t, result.RiskLevel)
	assert.NotEmpty(t, result.RiskFactors)
	assert.NotEmpty(t, result.Suggestions)
	assert.NotEmpty(t, result.MarketSizeLabel)
}
