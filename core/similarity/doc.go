// Package similarity ranks corpus documents against queries by cosine
// similarity.
//
//	ranker := similarity.NewRanker(embeddingService)
//	results, err := ranker.Rank(ctx,
//		[]string{"bank loan"},
//		[]string{"bank loan agreement", "weather forecast", "loan and bank fees"},
//		2,
//	)
//	// results[0] holds two matches, best first.
//
// Vectors are recomputed on every call; nothing is cached between calls.
package similarity
