package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/internal"
	"github.com/robohr/ai-service/pkg/cache"
	"github.com/robohr/ai-service/pkg/models"
)

var log = internal.GetLogger()

var _ models.CommandProcessor = &Processor{}

const commandCacheTTL = time.Hour

// Processor interprets HRMS commands using ordered regex pattern matching
// with a keyword overlap fallback.
type Processor struct {
	appConfig *config.Config
	cache     cache.Cache
	intents   []intentPatterns
}

// NewProcessor compiles the intent and entity patterns. Use this to correctly
// initialize the processor.
func NewProcessor(cfg *config.Config, c cache.Cache) *Processor {
	return &Processor{
		appConfig: cfg,
		cache:     c,
		intents:   compileIntentPatterns(),
	}
}

// Process classifies the intent of text, extracts entities, and builds an
// action plan for the identified intent.
func (p *Processor) Process(
	ctx context.Context,
	text, lang string,
	employeeID *int64,
) (*models.CommandResult, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return nil, models.NewBadRequestError("command text is empty")
	}
	normalized := strings.ToLower(raw)

	cacheKey := commandCacheKey(normalized, lang, employeeID)
	if p.cacheEnabled() {
		if result, ok := p.cachedResult(ctx, cacheKey); ok {
			return result, nil
		}
	}

	intent, confidence := p.classifyIntent(normalized)
	entities := extractEntities(raw)

	result := respond(intent, entities, normalized, employeeID)
	result.Confidence = confidence

	if p.cacheEnabled() {
		p.cacheResult(ctx, cacheKey, result)
	}

	return result, nil
}

func (p *Processor) Healthy() bool {
	return len(p.intents) > 0
}

func (p *Processor) cacheEnabled() bool {
	return p.appConfig.NLP.CacheEnabled && p.cache != nil
}

func (p *Processor) cachedResult(ctx context.Context, key string) (*models.CommandResult, bool) {
	payload, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		log.Warnf("command cache get failed: %v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var result models.CommandResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		log.Warnf("command cache entry corrupt: %v", err)
		return nil, false
	}
	return &result, true
}

func (p *Processor) cacheResult(ctx context.Context, key string, result *models.CommandResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		log.Warnf("command cache marshal failed: %v", err)
		return
	}
	if err := p.cache.Set(ctx, key, string(payload), commandCacheTTL); err != nil {
		log.Warnf("command cache set failed: %v", err)
	}
}

func commandCacheKey(text, lang string, employeeID *int64) string {
	id := int64(0)
	if employeeID != nil {
		id = *employeeID
	}
	return fmt.Sprintf("cmd:%s_%s_%d", text, lang, id)
}
