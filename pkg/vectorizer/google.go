package vectorizer

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"google.golang.org/genai"
)

// Google model constants.
const (
	GoogleTextEmbedding005             = "text-embedding-005"
	GoogleTextMultilingualEmbedding002 = "text-multilingual-embedding-002"
	GoogleGeminiEmbedding001           = "gemini-embedding-001"
)

// GoogleDefaultDimensions is used when no dimensions option is given.
const GoogleDefaultDimensions = 768

var googleValidDimensions = []int{256, 768, 1536, 3072}

// Google implements the Vectorizer interface using Google's Generative AI API.
type Google struct {
	client     *genai.Client
	model      string
	dimensions int
	maxBatch   int
	backend    genai.Backend
	project    string
	location   string
}

// GoogleOption is a functional option for configuring Google.
type GoogleOption func(*Google)

// WithGoogleModel sets the model to use. Empty values keep the default.
func WithGoogleModel(model string) GoogleOption {
	return func(g *Google) {
		if model != "" {
			g.model = model
		}
	}
}

// WithGoogleDimensions sets the output dimensions for the embeddings.
// Supported values: 256, 768, 1536, 3072. Zero keeps the default.
func WithGoogleDimensions(dims int) GoogleOption {
	return func(g *Google) {
		if dims != 0 {
			g.dimensions = dims
		}
	}
}

// googleMaxBatch is the most texts the API accepts in one call.
const googleMaxBatch = 100

// WithGoogleMaxBatchSize sets how many texts are sent per API call. Larger
// batches are split. Values above the API limit are clamped to it.
func WithGoogleMaxBatchSize(size int) GoogleOption {
	return func(g *Google) {
		if size > 0 {
			g.maxBatch = min(size, googleMaxBatch)
		}
	}
}

// WithGoogleProject sets the GCP project ID for Vertex AI.
func WithGoogleProject(project string) GoogleOption {
	return func(g *Google) {
		g.project = project
	}
}

// WithGoogleLocation sets the GCP location/region for Vertex AI.
func WithGoogleLocation(location string) GoogleOption {
	return func(g *Google) {
		g.location = location
	}
}

// NewGoogle creates a Google vectorizer. With an API key it talks to the
// Gemini API; without one it needs a project and location and uses Vertex AI
// with application default credentials.
func NewGoogle(ctx context.Context, apiKey string, opts ...GoogleOption) (*Google, error) {
	g := &Google{
		model:      GoogleTextMultilingualEmbedding002,
		dimensions: GoogleDefaultDimensions,
		maxBatch:   googleMaxBatch,
		backend:    genai.BackendGeminiAPI,
	}

	for _, opt := range opts {
		opt(g)
	}

	if apiKey == "" {
		if g.project == "" || g.location == "" {
			return nil, fmt.Errorf("%w: either an API key or a Vertex AI project and location are required",
				ErrInvalidAPIKey)
		}
		g.backend = genai.BackendVertexAI
	}

	// Validate before building a client so misconfiguration never touches the network.
	if err := ValidateGoogle(g.model, g.dimensions); err != nil {
		return nil, err
	}

	config := &genai.ClientConfig{
		APIKey:   apiKey,
		Backend:  g.backend,
		Project:  g.project,
		Location: g.location,
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, errors.Join(ErrClientCreationFailed, err)
	}
	g.client = client

	return g, nil
}

// ValidateGoogle checks that model is supported and dims is one of its
// output sizes. An empty model means the default model.
func ValidateGoogle(model string, dims int) error {
	if model == "" {
		model = GoogleTextMultilingualEmbedding002
	}
	switch model {
	case GoogleTextEmbedding005, GoogleTextMultilingualEmbedding002, GoogleGeminiEmbedding001:
		if !slices.Contains(googleValidDimensions, dims) {
			return fmt.Errorf("%w: %s only supports dimensions 256, 768, 1536, or 3072, got %d",
				ErrInvalidDimensions, model, dims)
		}
	default:
		return fmt.Errorf("%w: %s", ErrModelNotSupported, model)
	}
	return nil
}

// Embed converts a single text to vector embedding.
func (g *Google) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := g.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch converts multiple texts to vector embeddings.
// Returns embeddings in the same order as input texts. Batches larger than
// the per-call limit are sent in consecutive chunks.
func (g *Google) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, 0, len(texts))
	for chunk := range slices.Chunk(texts, g.maxBatch) {
		vectors, err := g.embedChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		result = append(result, vectors...)
	}
	return result, nil
}

func (g *Google) embedChunk(ctx context.Context, texts []string) ([][]float32, error) {
	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(text)},
		}
	}

	dims := int32(g.dimensions)
	config := &genai.EmbedContentConfig{OutputDimensionality: &dims}

	resp, err := g.client.Models.EmbedContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, errors.Join(ErrEmbeddingFailed, err)
	}

	if resp == nil || len(resp.Embeddings) == 0 {
		return nil, ErrNoEmbeddingReturned
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingCountMismatch, len(texts), len(resp.Embeddings))
	}

	result := make([][]float32, len(resp.Embeddings))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyEmbedding, i)
		}
		result[i] = emb.Values
	}

	return result, nil
}

// Dimensions returns the vector size this implementation produces.
func (g *Google) Dimensions() int {
	return g.dimensions
}
