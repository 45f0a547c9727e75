package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radar-ali360/radar-engine/pkg/models"
)

func TestBuildRegionalAggregates(t *testing.T) {
	companies := []models.CompanyProfile{
		{Name: "A", Regional: "Centro", Challenge: "Vendas", Sector: "Comércio", Maturity: "Inicial", Stage: models.StageNomear},
		{Name: "B", Regional: "Centro", Challenge: "Vendas", Sector: "Serviços", Maturity: "Inicial", Stage: models.StageElaborar},
		{Name: "C", Regional: "Centro", Challenge: "Finanças", Sector: "Comércio", Maturity: "Intermediária", Stage: models.StageNomear},
		{Name: "D", Regional: "Norte", Challenge: "Marketing", Sector: "Indústria", Maturity: "Inicial", Stage: models.StageNomear},
	}

	agg := BuildRegionalAggregates(companies, "Centro")

	assert.Equal(t, "Centro", agg.Regional)
	assert.Equal(t, 3, agg.TotalCompanies)

	require.NotEmpty(t, agg.TopChallenges)
	assert.Equal(t, models.CountItem{Label: "Vendas", Count: 2}, agg.TopChallenges[0])
	assert.Equal(t, models.CountItem{Label: "Finanças", Count: 1}, agg.TopChallenges[1])

	assert.Equal(t, models.CountItem{Label: "Comércio", Count: 2}, agg.TopSectors[0])
	assert.Equal(t, models.CountItem{Label: "Inicial", Count: 2}, agg.MaturityDistribution[0])
	assert.Equal(t, models.CountItem{Label: models.StageNomear, Count: 2}, agg.StageDistribution[0])
}

func TestBuildRegionalAggregates_AllRegionals(t *testing.T) {
	companies := []models.CompanyProfile{
		{Name: "A", Regional: "Centro", Challenge: "Vendas"},
		{Name: "B", Regional: "Norte", Challenge: "Vendas"},
	}

	agg := BuildRegionalAggregates(companies, "")
	assert.Equal(t, 2, agg.TotalCompanies)
	assert.Equal(t, models.CountItem{Label: "Vendas", Count: 2}, agg.TopChallenges[0])
}

func TestBuildRegionalAggregates_TieOrderIsAlphabetical(t *testing.T) {
	companies := []models.CompanyProfile{
		{Name: "A", Challenge: "Vendas"},
		{Name: "B", Challenge: "Finanças"},
	}

	agg := BuildRegionalAggregates(companies, "")
	require.Len(t, agg.TopChallenges, 2)
	assert.Equal(t, "Finanças", agg.TopChallenges[0].Label)
	assert.Equal(t, "Vendas", agg.TopChallenges[1].Label)
}

func TestBuildRegionalAggregates_TopItemsCapped(t *testing.T) {
	var companies []models.CompanyProfile
	labels := []string{"Vendas", "Finanças", "Marketing", "Gestão", "Inovação", "Pessoas", "Operações"}
	for _, l := range labels {
		companies = append(companies, models.CompanyProfile{Name: "X", Challenge: l})
	}

	agg := BuildRegionalAggregates(companies, "")
	assert.Len(t, agg.TopChallenges, topAggregateItems)
}

func TestBuildRegionalAggregates_IgnoresEmptyFields(t *testing.T) {
	agg := BuildRegionalAggregates([]models.CompanyProfile{{Name: "A"}}, "")
	assert.Equal(t, 1, agg.TotalCompanies)
	assert.Empty(t, agg.TopChallenges)
	assert.Empty(t, agg.MaturityDistribution)
}
