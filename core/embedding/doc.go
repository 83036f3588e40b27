// Package embedding maps batches of texts to fixed-size vectors.
//
// A Service wraps one vectorizer.Vectorizer chosen once at startup:
//
//	v, err := embedding.NewVectorizerWithFallback(cfg, log)
//	if err != nil {
//		return err
//	}
//	svc := embedding.New(v, embedding.WithLogger(log))
//
//	vecs, err := svc.Embed(ctx, []string{"hello", "world"}, true)
//
// The fake provider is deterministic: the same text always produces the same
// vector. The openai and google providers call hosted models and are built on
// first use.
//
// Backend failures are reported as ErrEmbeddingBackend with the original
// error joined, so both errors.Is(err, ErrEmbeddingBackend) and checks for
// the backend's own errors succeed. An unknown provider name is an
// ErrConfiguration; NewVectorizerWithFallback logs it and uses the fake
// provider instead.
package embedding
