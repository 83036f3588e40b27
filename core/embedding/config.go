package embedding

// DefaultMaxBatchSize caps the texts accepted in one request.
const DefaultMaxBatchSize = 256

// Config selects and tunes the embedding backend.
type Config struct {
	Provider  string `env:"EMBEDDINGS_PROVIDER" envDefault:"fake"`
	ModelName string `env:"EMBEDDING_MODEL_NAME"`

	// Dimensions of the produced vectors. Zero picks the backend default.
	Dimensions int `env:"EMBEDDING_DIMENSIONS" envDefault:"0"`

	APIKey         string `env:"EMBEDDING_API_KEY"`
	GoogleProject  string `env:"EMBEDDING_GOOGLE_PROJECT"`
	GoogleLocation string `env:"EMBEDDING_GOOGLE_LOCATION"`

	// MaxBatchSize caps the number of texts accepted in one request.
	MaxBatchSize int `env:"EMBEDDING_MAX_BATCH_SIZE" envDefault:"256"`

	// NormalizeUnicode applies NFC before hashing (fake provider only).
	NormalizeUnicode bool `env:"EMBEDDING_NORMALIZE_UNICODE" envDefault:"false"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Provider:     string(ProviderFake),
		MaxBatchSize: DefaultMaxBatchSize,
	}
}
