// Package advisor suggests which copy of a duplicate pair to keep using
// the Anthropic API. It is optional: callers fall back to local
// heuristics when the advisor is unavailable or fails.
package advisor

import (
	"context"

	"go.uber.org/zap"

	"github.com/Soulfra/document-generator-mvp-sub009/internal/config"
	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// Advisor recommends keep/delete choices for duplicate pairs.
type Advisor struct {
	client *Client
	config *config.AdvisorConfig
	logger *zap.Logger

	tokensUsed int
}

// NewAdvisor creates a new decision advisor
func NewAdvisor(cfg *config.AdvisorConfig, logger *zap.Logger) (*Advisor, error) {
	client, err := NewClient(cfg.Model, cfg.APIToken, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Advisor{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// SuggestKeep asks the model which of two duplicate candidates to keep.
func (a *Advisor) SuggestKeep(ctx context.Context, fileA, fileB models.FileCandidate) (*Suggestion, error) {
	req := &SuggestionRequest{
		PathA:    fileA.Path,
		PathB:    fileB.Path,
		SizeA:    fileA.Size,
		SizeB:    fileB.Size,
		ModTimeA: fileA.ModTime.Format("2006-01-02 15:04:05"),
		ModTimeB: fileB.ModTime.Format("2006-01-02 15:04:05"),
	}

	suggestion, err := a.client.Suggest(ctx, req)
	if err != nil {
		a.logger.Debug("Advisor request failed", zap.Error(err))
		return nil, err
	}

	a.tokensUsed += suggestion.TokensUsed
	a.logger.Debug("Advisor suggestion",
		zap.String("keep", suggestion.Keep),
		zap.Int("confidence", suggestion.Confidence))

	return suggestion, nil
}

// TokensUsed returns the total tokens consumed across all suggestions.
func (a *Advisor) TokensUsed() int {
	return a.tokensUsed
}
