package vectorizer

import "errors"

var (
	// ErrInvalidDimensions indicates invalid dimensions for the model.
	ErrInvalidDimensions = errors.New("invalid dimensions for model")

	// ErrModelNotSupported indicates the model is not supported.
	ErrModelNotSupported = errors.New("model not supported")

	// ErrInvalidAPIKey indicates an invalid or missing API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrEmbeddingFailed indicates the provider rejected or failed the request.
	ErrEmbeddingFailed = errors.New("failed to create embedding")

	// ErrNoEmbeddingReturned indicates no embedding was returned by the API.
	ErrNoEmbeddingReturned = errors.New("no embedding returned")

	// ErrEmbeddingCountMismatch indicates the number of embeddings returned doesn't match the input.
	ErrEmbeddingCountMismatch = errors.New("embedding count mismatch")

	// ErrEmptyEmbedding indicates an empty embedding was returned.
	ErrEmptyEmbedding = errors.New("empty embedding returned")

	// ErrClientCreationFailed indicates the backend client could not be built.
	ErrClientCreationFailed = errors.New("failed to create API client")
)
