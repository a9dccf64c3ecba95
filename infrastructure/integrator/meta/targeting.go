package meta

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var defaultTargeting = map[string]any{
	"geo_locations": map[string]any{"countries": []string{"BR"}},
}

// decodeTargeting lê a segmentação salva como JSON; vazia vira Brasil inteiro.
func decodeTargeting(raw *string) (map[string]any, error) {
	if raw == nil || *raw == "" || *raw == "null" || *raw == "{}" {
		return defaultTargeting, nil
	}

	var targeting map[string]any
	if err := json.UnmarshalFromString(*raw, &targeting); err != nil {
		return nil, errors.Wrap(err, "segmentação inválida")
	}

	if _, ok := targeting["geo_locations"]; !ok {
		targeting["geo_locations"] = defaultTargeting["geo_locations"]
	}

	return targeting, nil
}
