package embedding

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/aiservice/core/logger"
	"github.com/dmitrymomot/aiservice/pkg/vectorizer"
)

// Provider names an embedding backend.
type Provider string

// Supported providers.
const (
	ProviderFake   Provider = "fake"
	ProviderOpenAI Provider = "openai"
	ProviderGoogle Provider = "google"
)

// ParseProvider maps a configured name to a Provider. Matching ignores case
// and surrounding spaces. Unknown names return ErrUnknownProvider.
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(name))); p {
	case ProviderFake, ProviderOpenAI, ProviderGoogle:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
}

// NewVectorizer builds the backend named by cfg.Provider. Remote backends are
// wrapped in vectorizer.Lazy, so no client exists until the first request.
// Every failure wraps ErrConfiguration.
func NewVectorizer(cfg Config) (vectorizer.Vectorizer, error) {
	p, err := ParseProvider(cfg.Provider)
	if err != nil {
		return nil, err
	}
	return newForProvider(p, cfg)
}

// NewVectorizerWithFallback behaves like NewVectorizer, except that an
// unknown provider name is logged and replaced by the deterministic backend.
// Other configuration errors are returned.
func NewVectorizerWithFallback(cfg Config, log *slog.Logger) (vectorizer.Vectorizer, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p, err := ParseProvider(cfg.Provider)
	if err != nil {
		if !errors.Is(err, ErrUnknownProvider) {
			return nil, err
		}
		log.Warn("unsupported embeddings provider, falling back to deterministic backend",
			logger.Component("embedding"),
			logger.Provider(cfg.Provider),
			slog.String("fallback", string(ProviderFake)),
		)
		p = ProviderFake
	}

	v, err := newForProvider(p, cfg)
	if err != nil {
		return nil, err
	}

	log.Info("embedding backend selected",
		logger.Component("embedding"),
		logger.Provider(string(p)),
		logger.Dimensions(v.Dimensions()),
	)
	return v, nil
}

func newForProvider(p Provider, cfg Config) (vectorizer.Vectorizer, error) {
	switch p {
	case ProviderFake:
		opts := []vectorizer.HashOption{}
		if cfg.Dimensions != 0 {
			opts = append(opts, vectorizer.WithHashDimensions(cfg.Dimensions))
		}
		if cfg.NormalizeUnicode {
			opts = append(opts, vectorizer.WithUnicodeNormalization())
		}
		v, err := vectorizer.NewHash(opts...)
		if err != nil {
			return nil, errors.Join(ErrConfiguration, err)
		}
		return v, nil

	case ProviderOpenAI:
		return newOpenAI(cfg)

	case ProviderGoogle:
		return newGoogle(cfg)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, p)
}

func newOpenAI(cfg Config) (vectorizer.Vectorizer, error) {
	if cfg.APIKey == "" {
		return nil, errors.Join(ErrConfiguration, vectorizer.ErrInvalidAPIKey)
	}

	maxDims, err := vectorizer.OpenAIDefaultDimensions(cfg.ModelName)
	if err != nil {
		return nil, errors.Join(ErrConfiguration, err)
	}
	dims := cfg.Dimensions
	if dims == 0 {
		dims = maxDims
	}
	if dims < 1 || dims > maxDims {
		return nil, errors.Join(ErrConfiguration,
			fmt.Errorf("%w: got %d, max is %d", vectorizer.ErrInvalidDimensions, dims, maxDims))
	}

	opts := []vectorizer.OpenAIOption{
		vectorizer.WithOpenAIModel(cfg.ModelName),
		vectorizer.WithOpenAIDimensions(dims),
		vectorizer.WithOpenAIMaxBatchSize(cfg.MaxBatchSize),
	}

	return vectorizer.NewLazy(dims, func(context.Context) (vectorizer.Vectorizer, error) {
		return vectorizer.NewOpenAI(cfg.APIKey, opts...)
	}), nil
}

func newGoogle(cfg Config) (vectorizer.Vectorizer, error) {
	if cfg.APIKey == "" && (cfg.GoogleProject == "" || cfg.GoogleLocation == "") {
		return nil, errors.Join(ErrConfiguration, vectorizer.ErrInvalidAPIKey)
	}

	dims := cfg.Dimensions
	if dims == 0 {
		dims = vectorizer.GoogleDefaultDimensions
	}
	if err := vectorizer.ValidateGoogle(cfg.ModelName, dims); err != nil {
		return nil, errors.Join(ErrConfiguration, err)
	}

	opts := []vectorizer.GoogleOption{
		vectorizer.WithGoogleModel(cfg.ModelName),
		vectorizer.WithGoogleDimensions(dims),
		vectorizer.WithGoogleMaxBatchSize(cfg.MaxBatchSize),
		vectorizer.WithGoogleProject(cfg.GoogleProject),
		vectorizer.WithGoogleLocation(cfg.GoogleLocation),
	}

	return vectorizer.NewLazy(dims, func(ctx context.Context) (vectorizer.Vectorizer, error) {
		return vectorizer.NewGoogle(ctx, cfg.APIKey, opts...)
	}), nil
}
