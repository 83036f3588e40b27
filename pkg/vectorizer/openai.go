package vectorizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI model constants.
const (
	OpenAITextEmbedding3Small = "text-embedding-3-small"
	OpenAITextEmbedding3Large = "text-embedding-3-large"
)

// Native output sizes of the OpenAI models. Smaller sizes are produced by
// the API through the dimensions parameter.
const (
	maxDimensionsSmall = 1536
	maxDimensionsLarge = 3072
)

// OpenAI implements the Vectorizer interface using OpenAI's embeddings API.
type OpenAI struct {
	client     openai.Client
	model      string
	dimensions int
	maxBatch   int

	httpClient *http.Client
	baseURL    string
}

// OpenAIOption is a functional option for configuring OpenAI.
type OpenAIOption func(*OpenAI)

// WithOpenAIModel sets the model to use. Empty values keep the default.
func WithOpenAIModel(model string) OpenAIOption {
	return func(o *OpenAI) {
		if model != "" {
			o.model = model
		}
	}
}

// WithOpenAIDimensions sets the output dimensions for the embeddings.
// Zero keeps the model's native size.
func WithOpenAIDimensions(dims int) OpenAIOption {
	return func(o *OpenAI) {
		o.dimensions = dims
	}
}

// openAIMaxBatch is the most inputs the API accepts in one call.
const openAIMaxBatch = 2048

// WithOpenAIMaxBatchSize sets how many texts are sent per API call. Larger
// batches are split. Values above the API limit are clamped to it; zero or
// negative values keep the default of 100.
func WithOpenAIMaxBatchSize(size int) OpenAIOption {
	return func(o *OpenAI) {
		if size > 0 {
			o.maxBatch = min(size, openAIMaxBatch)
		}
	}
}

// WithOpenAIHTTPClient sets a custom HTTP client.
func WithOpenAIHTTPClient(client *http.Client) OpenAIOption {
	return func(o *OpenAI) {
		o.httpClient = client
	}
}

// WithOpenAIBaseURL points the client at an OpenAI-compatible endpoint.
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(o *OpenAI) {
		o.baseURL = url
	}
}

// NewOpenAI creates a new OpenAI vectorizer. No network call is made here.
func NewOpenAI(apiKey string, opts ...OpenAIOption) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	o := &OpenAI{
		model:    OpenAITextEmbedding3Small,
		maxBatch: 100,
	}

	for _, opt := range opts {
		opt(o)
	}

	maxDims, err := openAIMaxDimensions(o.model)
	if err != nil {
		return nil, err
	}
	if o.dimensions == 0 {
		o.dimensions = maxDims
	}
	if o.dimensions < 1 || o.dimensions > maxDims {
		return nil, fmt.Errorf("%w: %s supports 1 to %d dimensions, got %d",
			ErrInvalidDimensions, o.model, maxDims, o.dimensions)
	}

	// Retries are left to the caller; a failed batch is reported as is.
	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if o.httpClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(o.httpClient))
	}
	if o.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(o.baseURL))
	}
	o.client = openai.NewClient(reqOpts...)

	return o, nil
}

// OpenAIDefaultDimensions returns the native output size of a supported model.
func OpenAIDefaultDimensions(model string) (int, error) {
	if model == "" {
		model = OpenAITextEmbedding3Small
	}
	return openAIMaxDimensions(model)
}

func openAIMaxDimensions(model string) (int, error) {
	switch model {
	case OpenAITextEmbedding3Small:
		return maxDimensionsSmall, nil
	case OpenAITextEmbedding3Large:
		return maxDimensionsLarge, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrModelNotSupported, model)
	}
}

// Embed converts a single text to vector embedding.
func (o *OpenAI) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := o.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch converts multiple texts to vector embeddings.
// Returns embeddings in the same order as input texts. Batches larger than
// the per-call limit are sent in consecutive chunks.
func (o *OpenAI) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	result := make([][]float32, 0, len(texts))
	for chunk := range slices.Chunk(texts, o.maxBatch) {
		vectors, err := o.embedChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		result = append(result, vectors...)
	}
	return result, nil
}

func (o *OpenAI) embedChunk(ctx context.Context, texts []string) ([][]float32, error) {
	inputs := make([]string, len(texts))
	copy(inputs, texts)

	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(o.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: inputs,
		},
		Dimensions: openai.Int(int64(o.dimensions)),
	}

	resp, err := o.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, errors.Join(ErrEmbeddingFailed, err)
	}

	if len(resp.Data) == 0 {
		return nil, ErrNoEmbeddingReturned
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingCountMismatch, len(texts), len(resp.Data))
	}

	// The API reports each vector with its input index; place them accordingly.
	result := make([][]float32, len(texts))
	for _, data := range resp.Data {
		idx := int(data.Index)
		if idx < 0 || idx >= len(result) || result[idx] != nil {
			return nil, fmt.Errorf("%w: unexpected index %d", ErrEmbeddingCountMismatch, idx)
		}
		if len(data.Embedding) == 0 {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyEmbedding, idx)
		}

		embedding := make([]float32, len(data.Embedding))
		for j, v := range data.Embedding {
			embedding[j] = float32(v)
		}
		result[idx] = embedding
	}

	return result, nil
}

// Dimensions returns the vector size this implementation produces.
func (o *OpenAI) Dimensions() int {
	return o.dimensions
}
