package translation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robohr/ai-service/config"
	"github.com/robohr/ai-service/pkg/cache"
	"github.com/robohr/ai-service/pkg/models"
)

func newTestService(t *testing.T, cacheEnabled bool) *Service {
	t.Helper()
	cfg := &config.Config{
		Translation: config.TranslationConfig{
			Provider:     ProviderMock,
			CacheEnabled: cacheEnabled,
			CacheTTL:     3600,
			MaxLength:    5000,
		},
	}
	svc, err := NewService(cfg, cache.NewMemoryCache())
	require.NoError(t, err)
	return svc
}

func TestTranslateExactPhrase(t *testing.T) {
	svc := newTestService(t, false)

	out, err := svc.Translate(context.Background(), "Clock in", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "fichar entrada", out)
}

func TestTranslatePartialPhrase(t *testing.T) {
	svc := newTestService(t, false)

	out, err := svc.Translate(context.Background(), "please clock out now", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "please fichar salida now", out)
}

func TestTranslateSameLanguage(t *testing.T) {
	svc := newTestService(t, false)

	out, err := svc.Translate(context.Background(), "clock in", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "clock in", out)
}

func TestTranslateEmptyText(t *testing.T) {
	svc := newTestService(t, false)

	out, err := svc.Translate(context.Background(), "   ", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "   ", out)
}

func TestTranslateMaxLength(t *testing.T) {
	svc := newTestService(t, false)
	svc.appConfig.Translation.MaxLength = 10

	_, err := svc.Translate(context.Background(), strings.Repeat("a", 11), "en", "es")
	assert.ErrorIs(t, err, models.ErrBadRequest)
}

func TestTranslateGlossaryPass(t *testing.T) {
	svc := newTestService(t, false)

	out, err := svc.Translate(context.Background(), "annual sick leave policy", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "annual licencia por enfermedad policy", out)
}

func TestTranslateCached(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	first, err := svc.Translate(ctx, "request leave", "en", "fr")
	require.NoError(t, err)

	size, err := svc.cache.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), size)

	second, err := svc.Translate(ctx, "request leave", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTranslateWithConfidence(t *testing.T) {
	svc := newTestService(t, false)

	resp, err := svc.TranslateWithConfidence(
		context.Background(), "show me my attendance", "en", "es",
	)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "muéstrame mi asistencia", resp.TranslatedText)
	assert.Equal(t, "en", resp.SourceLanguage)
	assert.Equal(t, "es", resp.TargetLanguage)
	assert.InDelta(t, 0.9, resp.Confidence, 0.001)
}

func TestTranslateWithConfidenceShortText(t *testing.T) {
	svc := newTestService(t, false)

	resp, err := svc.TranslateWithConfidence(context.Background(), "hi", "en", "es")
	require.NoError(t, err)
	assert.InDelta(t, 0.35, resp.Confidence, 0.001)
}

func TestTranslateWithConfidenceUnsupportedTarget(t *testing.T) {
	svc := newTestService(t, false)

	resp, err := svc.TranslateWithConfidence(
		context.Background(), "show me my attendance", "en", "ko",
	)
	require.NoError(t, err)
	assert.Equal(t, "show me my attendance", resp.TranslatedText)
	assert.InDelta(t, 0.54, resp.Confidence, 0.001)
}

func TestTranslateAutoDetect(t *testing.T) {
	svc := newTestService(t, false)

	resp, err := svc.TranslateWithConfidence(
		context.Background(), "hola gracias por la ayuda", "auto", "en",
	)
	require.NoError(t, err)
	assert.Equal(t, "es", resp.SourceLanguage)
}

func TestBatchTranslate(t *testing.T) {
	svc := newTestService(t, false)

	out, err := svc.BatchTranslate(
		context.Background(),
		[]string{"clock in", "clock out", "unknown phrase"},
		"en", "es",
	)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "fichar entrada", out[0])
	assert.Equal(t, "fichar salida", out[1])
	assert.Equal(t, "unknown phrase", out[2])
}

func TestTranslationStats(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	_, err := svc.Translate(ctx, "clock in", "en", "es")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CacheSize)
	assert.Equal(t, len(supportedLanguages), stats.SupportedLanguages)
	assert.Equal(t, len(hrGlossary), stats.GlossaryTerms)
	require.NotEmpty(t, stats.MostCommonPairs)
	assert.Equal(t, [2]string{"en", "es"}, stats.MostCommonPairs[0])
}

func TestClearCache(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	_, err := svc.Translate(ctx, "clock in", "en", "es")
	require.NoError(t, err)

	removed, err := svc.ClearCache(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	size, err := svc.cache.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), size)
}

func TestServiceHealthy(t *testing.T) {
	svc := newTestService(t, false)
	assert.True(t, svc.Healthy())
}

func TestUnsupportedProvider(t *testing.T) {
	cfg := &config.Config{
		Translation: config.TranslationConfig{Provider: "carrier-pigeon"},
	}
	_, err := NewService(cfg, cache.NewMemoryCache())
	assert.Error(t, err)
}
