package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/internal"
	"github.com/robohr/ai-service/pkg/cache"
	"github.com/robohr/ai-service/pkg/models"
)

var log = internal.GetLogger()

var _ models.TranslationService = &Service{}

const batchSize = 10

// Service implements models.TranslationService on top of a pluggable
// Provider. Results pass through the HR glossary and are cached by a
// hash of the text and language pair.
type Service struct {
	appConfig *config.Config
	provider  Provider
	cache     cache.Cache

	pairMu     sync.Mutex
	pairCounts map[[2]string]int
}

// NewService selects the provider named by translation.provider and
// wires it to the shared cache.
func NewService(cfg *config.Config, c cache.Cache) (*Service, error) {
	var (
		provider Provider
		err      error
	)
	switch cfg.Translation.Provider {
	case ProviderMock, "":
		provider = NewMockProvider()
	case ProviderRemote:
		provider, err = NewRemoteProvider(cfg.Translation.RemoteURL)
		if err != nil {
			return nil, err
		}
	case ProviderOpenAI:
		provider = NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf(
			"translation.provider (%s) is not supported", cfg.Translation.Provider,
		)
	}

	return &Service{
		appConfig:  cfg,
		provider:   provider,
		cache:      c,
		pairCounts: make(map[[2]string]int),
	}, nil
}

// Translate returns text in targetLang. A provider failure degrades to
// the original text rather than failing the request.
func (s *Service) Translate(
	ctx context.Context,
	text, sourceLang, targetLang string,
) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if maxLen := s.appConfig.Translation.MaxLength; maxLen > 0 && len(text) > maxLen {
		return "", models.NewBadRequestError(
			fmt.Sprintf("text exceeds the %d character translation limit", maxLen),
		)
	}

	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = detectLanguage(text)
	} else {
		sourceLang = normalizeLang(sourceLang)
	}
	if targetLang == "" {
		targetLang = "en"
	} else {
		targetLang = normalizeLang(targetLang)
	}
	s.countPair(sourceLang, targetLang)

	if sourceLang == targetLang {
		return text, nil
	}

	key := cacheKey(text, sourceLang, targetLang)
	if s.appConfig.Translation.CacheEnabled {
		if cached, ok, err := s.cache.Get(ctx, key); err != nil {
			log.Warnf("translation cache get failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	translated, err := s.provider.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		log.Warnf(
			"translation %s->%s failed, returning original text: %v",
			sourceLang, targetLang, err,
		)
		return text, nil
	}
	translated = applyGlossary(translated, targetLang)

	if s.appConfig.Translation.CacheEnabled {
		ttl := time.Duration(s.appConfig.Translation.CacheTTL) * time.Second
		if err := s.cache.Set(ctx, key, translated, ttl); err != nil {
			log.Warnf("translation cache set failed: %v", err)
		}
	}
	return translated, nil
}

// TranslateWithConfidence wraps Translate with a coarse confidence
// estimate based on text length and language support.
func (s *Service) TranslateWithConfidence(
	ctx context.Context,
	text, sourceLang, targetLang string,
) (*models.TranslationResponse, error) {
	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = detectLanguage(text)
	} else {
		sourceLang = normalizeLang(sourceLang)
	}
	if targetLang == "" {
		targetLang = "en"
	} else {
		targetLang = normalizeLang(targetLang)
	}

	translated, err := s.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}

	return &models.TranslationResponse{
		Success:        true,
		OriginalText:   text,
		TranslatedText: translated,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		Confidence:     estimateConfidence(text, sourceLang, targetLang),
	}, nil
}

// BatchTranslate translates texts in fixed size batches. A failed item
// falls back to its original text so one bad entry does not sink the
// whole batch.
func (s *Service) BatchTranslate(
	ctx context.Context,
	texts []string,
	sourceLang, targetLang string,
) ([]string, error) {
	results := make([]string, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		for _, text := range texts[start:end] {
			translated, err := s.Translate(ctx, text, sourceLang, targetLang)
			if err != nil {
				log.Warnf("batch translation item failed: %v", err)
				translated = text
			}
			results = append(results, translated)
		}
	}
	return results, nil
}

func (s *Service) DetectLanguage(text string) string {
	return detectLanguage(text)
}

func (s *Service) Languages() map[string]string {
	languages := make(map[string]string, len(supportedLanguages))
	for code, name := range supportedLanguages {
		languages[code] = name
	}
	return languages
}

func (s *Service) Stats(ctx context.Context) (*models.TranslationStats, error) {
	size, err := s.cache.Len(ctx)
	if err != nil {
		return nil, err
	}
	return &models.TranslationStats{
		CacheSize:          int(size),
		SupportedLanguages: len(supportedLanguages),
		GlossaryTerms:      len(hrGlossary),
		MostCommonPairs:    s.topPairs(5),
	}, nil
}

// ClearCache drops every cached translation and returns the number of
// entries removed.
func (s *Service) ClearCache(ctx context.Context) (int64, error) {
	return s.cache.Clear(ctx)
}

func (s *Service) Healthy() bool {
	return s.provider != nil
}

func (s *Service) countPair(sourceLang, targetLang string) {
	s.pairMu.Lock()
	defer s.pairMu.Unlock()
	s.pairCounts[[2]string{sourceLang, targetLang}]++
}

func (s *Service) topPairs(n int) [][2]string {
	s.pairMu.Lock()
	defer s.pairMu.Unlock()

	pairs := make([][2]string, 0, len(s.pairCounts))
	for pair := range s.pairCounts {
		pairs = append(pairs, pair)
	}
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if s.pairCounts[pairs[j]] > s.pairCounts[pairs[i]] {
				pairs[i], pairs[j] = pairs[j], pairs[i]
			}
		}
	}
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

func cacheKey(text, sourceLang, targetLang string) string {
	sum := sha256.Sum256([]byte(text + "|" + sourceLang + "|" + targetLang))
	return "tr:" + hex.EncodeToString(sum[:])
}

// estimateConfidence is a heuristic, not a model score. Multi word text
// translates more reliably than fragments, and unsupported languages
// fall back to pass-through behavior.
func estimateConfidence(text, sourceLang, targetLang string) float64 {
	confidence := 0.7
	if len(strings.Fields(text)) > 1 {
		confidence = 0.9
	}
	if len(strings.TrimSpace(text)) < 3 {
		confidence *= 0.5
	}
	if _, ok := supportedLanguages[sourceLang]; !ok {
		confidence *= 0.6
	}
	if _, ok := supportedLanguages[targetLang]; !ok {
		confidence *= 0.6
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
