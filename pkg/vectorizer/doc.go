// Package vectorizer converts text into fixed-size vector embeddings.
//
// All implementations satisfy the Vectorizer interface and return raw,
// unnormalized vectors. Callers that need unit vectors normalize them
// themselves (see pkg/vecmath).
//
// # Implementations
//
// Hash is a deterministic, model-free vectorizer. A text's SHA-256 digest is
// tiled to the configured dimension, so the same text always yields the same
// vector on any machine. It is meant for tests, local development and
// environments without access to an embedding model:
//
//	v, err := vectorizer.NewHash(vectorizer.WithHashDimensions(384))
//	if err != nil {
//		log.Fatal(err)
//	}
//	vec, _ := v.Embed(ctx, "hello")
//
// OpenAI and Google call hosted embedding models:
//
//	openaiVectorizer, err := vectorizer.NewOpenAI("api-key",
//		vectorizer.WithOpenAIModel(vectorizer.OpenAITextEmbedding3Large),
//		vectorizer.WithOpenAIDimensions(1024),
//	)
//
//	googleVectorizer, err := vectorizer.NewGoogle(ctx, "gemini-api-key",
//		vectorizer.WithGoogleModel(vectorizer.GoogleTextEmbedding005),
//		vectorizer.WithGoogleDimensions(768),
//	)
//
// # Lazy initialization
//
// Lazy defers building a backend until the first embedding request. The
// factory runs once even under concurrent first use; a failed build is
// retried on the next call:
//
//	v := vectorizer.NewLazy(1536, func(ctx context.Context) (vectorizer.Vectorizer, error) {
//		return vectorizer.NewOpenAI(apiKey)
//	})
//
// # Errors
//
// Configuration problems are reported at construction time with
// ErrInvalidAPIKey, ErrModelNotSupported or ErrInvalidDimensions. Request
// failures wrap ErrEmbeddingFailed; malformed provider responses return
// ErrNoEmbeddingReturned, ErrEmbeddingCountMismatch or ErrEmptyEmbedding.
package vectorizer
