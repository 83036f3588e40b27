package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when the environment cannot be parsed into the target.
var ErrParsingConfig = errors.New("failed to parse config")

var (
	loadDotEnv sync.Once
	cache      sync.Map // reflect.Type -> any (value of that type)
)

// Load fills cfg from environment variables. The first call for a type parses
// the environment; later calls copy the cached value. A .env file in the
// working directory is loaded once, without overriding variables already set.
func Load[T any](cfg *T) error {
	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	actual, _ := cache.LoadOrStore(key, parsed)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on error. Intended for program startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// List is a string slice read from a single variable. The value may be a
// JSON array (["a","b"]) or a comma-separated list (a,b). Blank items are dropped.
type List []string

// UnmarshalText implements encoding.TextUnmarshaler, which env uses for custom types.
func (l *List) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*l = List{}
		return nil
	}

	var items []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return fmt.Errorf("invalid JSON list: %w", err)
		}
	} else {
		items = strings.Split(raw, ",")
	}

	out := make(List, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*l = out
	return nil
}
