package openairetryclient

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryFunctionReturnsReadCloser(t *testing.T) {
	c := &OpenAIRetryClient{}
	c.Config.Timeout = 5 * time.Second
	c.Config.MaxAttempts = 3

	attempts := 0
	fn := func(_ context.Context, _ interface{}) (interface{}, error) {
		attempts++
		if attempts < 2 {
			return nil, errors.New("transient failure")
		}
		return io.NopCloser(strings.NewReader("audio bytes")), nil
	}

	result, err := c.retryFunction(context.Background(), c.Config.Timeout, c.Config.MaxAttempts, fn, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	body, ok := result.(io.ReadCloser)
	require.True(t, ok)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(data))
}

func TestRetryFunctionExhaustsAttempts(t *testing.T) {
	c := &OpenAIRetryClient{}
	c.Config.Timeout = 5 * time.Second
	c.Config.MaxAttempts = 2

	fn := func(_ context.Context, _ interface{}) (interface{}, error) {
		return nil, errors.New("persistent failure")
	}

	_, err := c.retryFunction(context.Background(), c.Config.Timeout, c.Config.MaxAttempts, fn, nil)
	require.Error(t, err)
}

// The speech synthesis endpoint streams its response body.
var _ func(context.Context, openai.CreateSpeechRequest) (io.ReadCloser, error) = (&OpenAIRetryClient{}).CreateSpeechWithRetry
