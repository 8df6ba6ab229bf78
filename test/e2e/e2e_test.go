// test/e2e/e2e_test.go
//
// End-to-end flow over the file-backed sources: fetch -> enrich ->
// parse-intent -> rank -> export. Runs without external services; the
// export step uses in-memory SES/SNS fakes.
package e2e

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadrank-workers/internal/common/logger"
	"leadrank-workers/internal/leadsource"
	"leadrank-workers/internal/models"
	"leadrank-workers/internal/profilesource"

	exportresults "leadrank-workers/internal/workers/export/export-results"
	parseintent "leadrank-workers/internal/workers/intent/parse-intent"
	enrichleads "leadrank-workers/internal/workers/leads/enrich-leads"
	fetchleads "leadrank-workers/internal/workers/leads/fetch-leads"
	rankleads "leadrank-workers/internal/workers/ranking/rank-leads"
)

type capturingSES struct {
	inputs []*ses.SendEmailInput
}

func (f *capturingSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, params)
	return &ses.SendEmailOutput{}, nil
}

type capturingSNS struct {
	inputs []*sns.PublishInput
}

func (f *capturingSNS) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, params)
	return &sns.PublishOutput{}, nil
}

func writeDataset(t *testing.T) (rawPath, enrichedPath string) {
	t.Helper()
	dir := t.TempDir()

	rawLeads := []models.RawLead{
		{CompanyName: "BioCore Labs", Sector: "Biotech", Region: "Boston"},
		{CompanyName: "Acme Retail", Sector: "Retail", Region: "Chicago"},
		{CompanyName: "NovaSoft", Sector: "Software", Region: "Boston"},
		{CompanyName: "Ghost Co", Sector: "Biotech", Region: "Boston"},
	}

	enriched := []models.Lead{
		{
			models.FieldCompany:        "BioCore Labs",
			models.FieldWebsite:        "https://biocore.example.com",
			models.FieldIndustry:       "Biotech",
			models.FieldCity:           "Boston",
			models.FieldState:          "MA",
			models.FieldEmployeesCount: "180",
			models.FieldRevenue:        "$25M",
			models.FieldYearFounded:    "2019",
			models.FieldHiringActivity: "9",
			models.FieldGrowthPercent: "35%",
			models.FieldRecentFunding:  "Series B, $40M, 2025",
			models.FieldOwnerLinkedIn:  "https://linkedin.com/in/biocore-ceo",
			models.FieldLastUpdated:    "2026-01-10",
		},
		{
			models.FieldCompany:        "Acme Retail",
			models.FieldIndustry:       "Retail",
			models.FieldCity:           "Chicago",
			models.FieldState:          "IL",
			models.FieldEmployeesCount: "1200",
			models.FieldRevenue:        "$300M",
			models.FieldYearFounded:    "1985",
			models.FieldHiringActivity: "2",
			models.FieldGrowthPercent: "-5%",
			models.FieldLastUpdated:    "2024-06-01",
		},
		{
			models.FieldCompany:        "NovaSoft",
			models.FieldWebsite:        "https://novasoft.example.com",
			models.FieldIndustry:       "Software",
			models.FieldCity:           "Boston",
			models.FieldState:          "MA",
			models.FieldEmployeesCount: "60",
			models.FieldRevenue:        "$8M",
			models.FieldYearFounded:    "2021",
			models.FieldHiringActivity: "6",
			models.FieldGrowthPercent: "15%",
			models.FieldRecentFunding:  "Seed round, $2M",
			models.FieldLastUpdated:    "2026-01-05",
		},
		// Ghost Co has no enrichment on purpose.
	}

	rawPath = filepath.Join(dir, "raw_leads.json")
	enrichedPath = filepath.Join(dir, "enriched_leads.json")

	rawData, err := json.Marshal(rawLeads)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(rawPath, rawData, 0o644))

	enrichedData, err := json.Marshal(enriched)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(enrichedPath, enrichedData, 0o644))

	return rawPath, enrichedPath
}

func TestLeadRankingFlow(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log := logger.NewTestLogger(t)
	rawPath, enrichedPath := writeDataset(t)

	// --- 1. Fetch leads by sector/region ---
	var leadSrc leadsource.Source = leadsource.NewFileSource(rawPath, log)
	fetchHandler := fetchleads.NewHandler(fetchleads.LoadConfig(), leadSrc, "file", log)

	fetchOut, err := fetchHandler.Execute(ctx, &fetchleads.Input{Region: "Boston"})
	require.NoError(t, err)
	assert.Equal(t, 3, fetchOut.Count)
	assert.Contains(t, fetchOut.CompanyNames, "BioCore Labs")
	assert.Contains(t, fetchOut.CompanyNames, "NovaSoft")
	assert.Contains(t, fetchOut.CompanyNames, "Ghost Co")
	t.Log("fetch-leads OK")

	// --- 2. Enrich the fetched companies ---
	var profileSrc profilesource.Source = profilesource.NewFileSource(enrichedPath, log)
	enrichHandler := enrichleads.NewHandler(enrichleads.LoadConfig(), profileSrc, log)

	enrichOut, err := enrichHandler.Execute(ctx, &enrichleads.Input{CompanyNames: fetchOut.CompanyNames})
	require.NoError(t, err)
	assert.Equal(t, 2, enrichOut.Count)
	assert.Equal(t, 1, enrichOut.Skipped, "Ghost Co has no profile")
	t.Log("enrich-leads OK")

	// --- 3. Parse the user's intent ---
	intentHandler := parseintent.NewHandler(parseintent.LoadConfig(), log)

	payload, err := json.Marshal(map[string]interface{}{
		"purpose": "Job Search",
		"sector":  "Biotech",
		"region":  "Boston",
		"preferences": map[string]interface{}{
			"jobSearch": map[string]interface{}{
				"companySize": "Medium",
			},
		},
	})
	require.NoError(t, err)

	intentOut, err := intentHandler.Execute(ctx, payload)
	require.NoError(t, err)
	require.True(t, intentOut.PurposeKnown)
	assert.Equal(t, models.PurposeJobSearch, intentOut.Intent.Purpose)
	t.Log("parse-intent OK")

	// --- 4. Rank the enriched leads ---
	rankHandler := rankleads.NewHandler(rankleads.LoadConfig(), nil, log)

	rankOut, err := rankHandler.Execute(ctx, &rankleads.Input{
		EnrichedLeads:  enrichOut.EnrichedLeads,
		Intent:         intentOut.Intent,
		EvaluationTime: "2026-02-01T00:00:00Z",
	})
	require.NoError(t, err)
	require.Equal(t, 2, rankOut.Count)

	for i := 1; i < len(rankOut.RankedLeads); i++ {
		assert.GreaterOrEqual(t, rankOut.RankedLeads[i-1].Score(), rankOut.RankedLeads[i].Score())
	}
	for _, lead := range rankOut.RankedLeads {
		assert.GreaterOrEqual(t, lead.Score(), 0.0)
	}
	// BioCore hires aggressively in the right sector; it must outrank NovaSoft.
	assert.Equal(t, "BioCore Labs", rankOut.RankedLeads[0].Company())
	assert.Equal(t, rankOut.RankedLeads[0].Score(), rankOut.TopScore)
	t.Log("rank-leads OK")

	// --- 5. Export the ranked list ---
	sesFake := &capturingSES{}
	snsFake := &capturingSNS{}

	exportCfg := exportresults.LoadConfig()
	exportCfg.EmailEnabled = true
	exportCfg.SMSEnabled = true
	exportCfg.FromEmail = "exports@leadrank.example.com"

	exportHandler := exportresults.NewHandler(exportCfg, sesFake, snsFake, log)

	exportOut, err := exportHandler.Execute(ctx, &exportresults.Input{
		RankedLeads:    rankOut.RankedLeads,
		RecipientEmail: "buyer@example.com",
		PhoneNumber:    "+15551230000",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, exportOut.RowCount)
	assert.NotEmpty(t, exportOut.ExportID)
	assert.True(t, exportOut.EmailSent)
	assert.True(t, exportOut.SMSSent)

	lines := strings.Split(strings.TrimSpace(exportOut.CSV), "\n")
	require.Len(t, lines, 3, "header plus two data rows")
	assert.Contains(t, lines[0], models.FieldRankScore)
	assert.Contains(t, lines[1], "BioCore Labs")

	require.Len(t, sesFake.inputs, 1)
	require.Len(t, snsFake.inputs, 1)
	t.Log("export-results OK")
}

func TestLeadRankingFlowUnknownPurpose(t *testing.T) {
	ctx := context.Background()
	log := logger.NewTestLogger(t)
	_, enrichedPath := writeDataset(t)

	profileSrc := profilesource.NewFileSource(enrichedPath, log)
	enrichHandler := enrichleads.NewHandler(enrichleads.LoadConfig(), profileSrc, log)

	enrichOut, err := enrichHandler.Execute(ctx, &enrichleads.Input{
		CompanyNames: []string{"BioCore Labs", "NovaSoft"},
	})
	require.NoError(t, err)

	intentHandler := parseintent.NewHandler(parseintent.LoadConfig(), log)
	intentOut, err := intentHandler.Execute(ctx, []byte(`{"purpose":"Time Travel"}`))
	require.NoError(t, err)
	assert.False(t, intentOut.PurposeKnown)

	rankHandler := rankleads.NewHandler(rankleads.LoadConfig(), nil, log)
	rankOut, err := rankHandler.Execute(ctx, &rankleads.Input{
		EnrichedLeads:  enrichOut.EnrichedLeads,
		Intent:         intentOut.Intent,
		EvaluationTime: "2026-02-01T00:00:00Z",
	})
	require.NoError(t, err)

	// Unrecognized purposes degrade to baseline scoring instead of failing.
	assert.Equal(t, 2, rankOut.Count)
	for _, lead := range rankOut.RankedLeads {
		assert.GreaterOrEqual(t, lead.Score(), 0.0)
	}
}
