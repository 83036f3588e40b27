// Package config loads typed configuration from environment variables.
//
// Struct fields are mapped with caarlos0/env tags. A .env file is read once on
// first use. Each type is parsed once and cached, so repeated calls are cheap
// and always agree:
//
//	type ServerConfig struct {
//		Host string `env:"HOST" envDefault:"127.0.0.1"`
//		Port int    `env:"PORT" envDefault:"8000"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// List reads a JSON array or a comma-separated string into a []string:
//
//	type CORSConfig struct {
//		Origins config.List `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`
//	}
package config
