// Package cache memoises cost engine results. The engine is pure, so a result
// can be reused for any byte-identical input.
package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Simplici0/carcost/internal/tco"
)

const keyPrefix = "tco:v1:"

// Cache stores engine results by input key.
type Cache interface {
	Get(ctx context.Context, key string) (tco.Result, bool, error)
	Set(ctx context.Context, key string, r tco.Result) error
}

// Key derives a stable cache key from every field of in.
func Key(in tco.Input) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%#v", in)))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// gob carries Inf and NaN, which the engine can produce.
func encode(r tco.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(b []byte) (tco.Result, error) {
	var r tco.Result
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&r); err != nil {
		return tco.Result{}, fmt.Errorf("decode result: %w", err)
	}
	return r, nil
}

// Engine runs the cost engine through a Cache.
type Engine struct {
	cache Cache
}

func NewEngine(c Cache) *Engine {
	return &Engine{cache: c}
}

// Calculate returns the cached result for in, computing and storing it on a
// miss. Cache failures are logged and never fail the calculation. The bool
// reports a cache hit.
func (e *Engine) Calculate(ctx context.Context, in tco.Input) (tco.Result, bool) {
	logger := zerolog.Ctx(ctx)
	key := Key(in)

	if res, ok, err := e.cache.Get(ctx, key); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache get failed")
	} else if ok {
		return res, true
	}

	res := tco.CalculateCarCosts(in)
	if err := e.cache.Set(ctx, key, res); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
	return res, false
}
