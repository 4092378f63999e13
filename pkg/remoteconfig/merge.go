package remoteconfig

import (
	"encoding/json"
)

// deepMerge overlays src onto dst key by key and returns a new map. Nested
// maps merge recursively; arrays and primitives are replaced wholesale,
// never concatenated. Neither input is mutated.
func deepMerge(dst, src map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(dst)+len(src))
	for key, value := range dst {
		out[key] = value
	}
	for key, value := range src {
		if srcMap, ok := value.(map[string]interface{}); ok {
			if dstMap, ok := out[key].(map[string]interface{}); ok {
				out[key] = deepMerge(dstMap, srcMap)
				continue
			}
		}
		out[key] = value
	}
	return out
}

// decodeConfig converts a merged document into the typed Config. Unknown
// keys drop; a mistyped value leaves its field at the zero value.
func decodeConfig(document map[string]interface{}) *Config {
	var config Config
	data, err := json.Marshal(document)
	if err != nil {
		return &config
	}
	_ = json.Unmarshal(data, &config)
	return &config
}
