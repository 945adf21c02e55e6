package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TCO_PURCHASEPRICE=30000.
const EnvPrefix = "TCO"

// Load reads a scenario file (any format viper understands: yaml, json,
// toml, ...) layered over Defaults, with environment overrides on top.
// An empty path yields the defaults plus environment overrides.
func Load(path string) (Request, error) {
	v := viper.New()

	defaults, err := defaultsMap()
	if err != nil {
		return Request{}, err
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Request{}, fmt.Errorf("read scenario file %s: %w", path, err)
		}
	}

	var req Request
	if err := v.Unmarshal(&req); err != nil {
		return Request{}, fmt.Errorf("decode scenario: %w", err)
	}
	return req, nil
}

func defaultsMap() (map[string]any, error) {
	raw, err := json.Marshal(Defaults())
	if err != nil {
		return nil, fmt.Errorf("encode scenario defaults: %w", err)
	}
	out := make(map[string]any)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode scenario defaults: %w", err)
	}
	return out, nil
}
