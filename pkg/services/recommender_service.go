package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/radar-ali360/radar-engine/pkg/apperrors"
	"github.com/radar-ali360/radar-engine/pkg/cache"
	"github.com/radar-ali360/radar-engine/pkg/llm"
	"github.com/radar-ali360/radar-engine/pkg/logging"
	"github.com/radar-ali360/radar-engine/pkg/models"
	"github.com/radar-ali360/radar-engine/pkg/parse"
	"github.com/radar-ali360/radar-engine/pkg/prompts"
)

// AdherenceUnavailable is the justification given to a company whose score
// could not be extracted from the completion.
const AdherenceUnavailable = "Não foi possível calcular a aderência."

// RecommenderOptions tune sampling and generation. Zero values take the
// defaults below.
type RecommenderOptions struct {
	SampleSize         int // catalog entries included in one prompt
	MaxRecommendations int
	MaxSuggestions     int

	RecommendationTemperature float64
	AdherenceTemperature      float64
	SuggestionTemperature     float64

	RecommendationMaxTokens int
	AdherenceMaxTokens      int
	SuggestionMaxTokens     int
}

func (o RecommenderOptions) withDefaults() RecommenderOptions {
	if o.SampleSize <= 0 {
		o.SampleSize = 20
	}
	if o.MaxRecommendations <= 0 {
		o.MaxRecommendations = parse.MaxRecommendations
	}
	if o.MaxSuggestions <= 0 {
		o.MaxSuggestions = parse.MaxSuggestions
	}
	if o.RecommendationTemperature <= 0 {
		o.RecommendationTemperature = 0.7
	}
	if o.AdherenceTemperature <= 0 {
		o.AdherenceTemperature = 0.7
	}
	if o.SuggestionTemperature <= 0 {
		o.SuggestionTemperature = 0.8
	}
	if o.RecommendationMaxTokens <= 0 {
		o.RecommendationMaxTokens = 1000
	}
	if o.AdherenceMaxTokens <= 0 {
		o.AdherenceMaxTokens = 1500
	}
	if o.SuggestionMaxTokens <= 0 {
		o.SuggestionMaxTokens = 1500
	}
	return o
}

// RecommenderService runs the prompt/complete/parse/resolve pipeline for the
// three response shapes the completion service produces. Degradations
// (empty catalog, completion failure, unparsable response) come back as
// empty result lists with distinct warning logs; an error return means the
// request itself was invalid or canceled.
type RecommenderService interface {
	// GetRecommendations returns ranked, catalog-resolved recommendations
	// for one company. Results are cached by (company, challenge); a cache
	// hit never touches the completion service.
	GetRecommendations(ctx context.Context, company models.CompanyProfile, scheduled []models.SolutionRecord) ([]models.RecommendationResult, error)

	// CalculateAdherence scores one solution against up to ten companies
	// with a single completion call. Every input company appears in the
	// output; unparsable ones get a zero score and a sentinel
	// justification. Output is sorted by descending score, ties keeping
	// input order.
	CalculateAdherence(ctx context.Context, solution models.SolutionRecord, companies []models.CompanyProfile) ([]models.AdherenceResult, error)

	// SuggestNewSolutions proposes portfolio additions for a regional from
	// its aggregate demand profile.
	SuggestNewSolutions(ctx context.Context, agg models.RegionalAggregates, scheduled []models.SolutionRecord) ([]models.CourseSuggestion, error)
}

type recommenderService struct {
	catalogs CatalogService
	store    cache.Store
	client   llm.CompletionClient
	opts     RecommenderOptions
	logger   *zap.Logger
}

// NewRecommenderService wires the pipeline. The cache store may be shared
// across instances (Redis) or process-local.
func NewRecommenderService(
	catalogs CatalogService,
	store cache.Store,
	client llm.CompletionClient,
	opts RecommenderOptions,
	logger *zap.Logger,
) RecommenderService {
	return &recommenderService{
		catalogs: catalogs,
		store:    store,
		client:   client,
		opts:     opts.withDefaults(),
		logger:   logger.Named("recommender"),
	}
}

var _ RecommenderService = (*recommenderService)(nil)

func (s *recommenderService) GetRecommendations(ctx context.Context, company models.CompanyProfile, scheduled []models.SolutionRecord) ([]models.RecommendationResult, error) {
	if company.Name == "" {
		return nil, fmt.Errorf("company name cannot be empty")
	}

	key := cache.Key{Company: company.Name, Challenge: company.Challenge}
	results, hit, err := s.store.GetOrCompute(ctx, key, func(ctx context.Context) ([]models.RecommendationResult, error) {
		return s.computeRecommendations(ctx, company, scheduled)
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Degradations answer with an empty list and never poison the
		// cache; the next identical request recomputes.
		s.logDegradation(err, company.Name)
		return []models.RecommendationResult{}, nil
	}

	s.logger.Debug("Recommendations served",
		zap.String("company", company.Name),
		zap.Bool("cache_hit", hit),
		zap.Int("results", len(results)))
	return results, nil
}

func (s *recommenderService) computeRecommendations(ctx context.Context, company models.CompanyProfile, scheduled []models.SolutionRecord) ([]models.RecommendationResult, error) {
	cat, resolver := s.catalogs.Snapshot()
	sample := cat.Sample(s.opts.SampleSize)

	prompt, err := prompts.BuildRecommendationPrompt(company, sample, scheduled, s.opts.MaxRecommendations)
	if err != nil {
		return nil, err
	}

	text, err := s.client.Complete(ctx, prompt, prompts.SystemMessage, s.opts.RecommendationTemperature, s.opts.RecommendationMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCompletionUnavailable, logging.SanitizeError(err))
	}

	candidates := parse.Recommendations(text, s.opts.MaxRecommendations)
	if len(candidates) == 0 {
		s.logger.Debug("Unparsable recommendation response",
			zap.String("company", company.Name),
			zap.String("excerpt", logging.Excerpt(text)))
		return nil, apperrors.ErrParseDegraded
	}

	return resolver.Candidates(candidates), nil
}

func (s *recommenderService) CalculateAdherence(ctx context.Context, solution models.SolutionRecord, companies []models.CompanyProfile) ([]models.AdherenceResult, error) {
	prompt, err := prompts.BuildAdherencePrompt(solution, companies)
	if err != nil {
		return nil, err
	}
	if len(companies) > prompts.MaxAdherenceCompanies {
		companies = companies[:prompts.MaxAdherenceCompanies]
	}

	text, err := s.client.Complete(ctx, prompt, prompts.SystemMessage, s.opts.AdherenceTemperature, s.opts.AdherenceMaxTokens)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logDegradation(fmt.Errorf("%w: %s", apperrors.ErrCompletionUnavailable, logging.SanitizeError(err)), solution.Name)
		return []models.AdherenceResult{}, nil
	}

	scores := parse.Adherence(text, len(companies))
	results := make([]models.AdherenceResult, len(companies))
	missing := 0
	for i, score := range scores {
		results[i] = models.AdherenceResult{
			Company:       companies[i].Name,
			Score:         score.Score,
			Justification: score.Justification,
		}
		if !score.Found {
			results[i].Justification = AdherenceUnavailable
			missing++
		}
	}
	if missing > 0 {
		s.logger.Warn("Adherence scores missing for some companies",
			zap.String("solution", solution.Name),
			zap.Int("missing", missing),
			zap.Int("companies", len(companies)))
	}

	// Presentation order; stable so equal scores keep input order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

func (s *recommenderService) SuggestNewSolutions(ctx context.Context, agg models.RegionalAggregates, scheduled []models.SolutionRecord) ([]models.CourseSuggestion, error) {
	prompt := prompts.BuildSuggestionPrompt(agg, scheduled, s.opts.MaxSuggestions)

	text, err := s.client.Complete(ctx, prompt, prompts.SystemMessage, s.opts.SuggestionTemperature, s.opts.SuggestionMaxTokens)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logDegradation(fmt.Errorf("%w: %s", apperrors.ErrCompletionUnavailable, logging.SanitizeError(err)), agg.Regional)
		return []models.CourseSuggestion{}, nil
	}

	suggestions := parse.Suggestions(text, s.opts.MaxSuggestions)
	if len(suggestions) == 0 {
		s.logDegradation(apperrors.ErrParseDegraded, agg.Regional)
		s.logger.Debug("Unparsable suggestion response",
			zap.String("regional", agg.Regional),
			zap.String("excerpt", logging.Excerpt(text)))
		return []models.CourseSuggestion{}, nil
	}
	return suggestions, nil
}

// logDegradation keeps the three recoverable failure classes apart in the
// logs so operators can tell "nothing to recommend from" from "the model
// was unreachable" from "the model said nothing useful".
func (s *recommenderService) logDegradation(err error, subject string) {
	switch {
	case errors.Is(err, apperrors.ErrEmptyCatalog):
		s.logger.Warn("Catalog empty, answering with no results", zap.String("subject", subject))
	case errors.Is(err, apperrors.ErrCompletionUnavailable):
		s.logger.Warn("Completion service failed", zap.String("subject", subject), zap.String("error", err.Error()))
	case errors.Is(err, apperrors.ErrParseDegraded):
		s.logger.Warn("All parse strategies failed", zap.String("subject", subject))
	default:
		s.logger.Warn("Recommendation pipeline failed", zap.String("subject", subject), zap.String("error", logging.SanitizeError(err)))
	}
}
