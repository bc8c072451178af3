package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// normalizeToJSON converts YAML documents to JSON so downstream parsing only
// deals with one encoding. JSON payloads pass through untouched.
func normalizeToJSON(location string, data []byte) ([]byte, error) {
	if !looksLikeYAML(location, data) {
		return data, nil
	}

	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("config loader: decode yaml %s: %w", location, err)
	}

	out, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("config loader: convert yaml %s: %w", location, err)
	}
	return out, nil
}

func looksLikeYAML(location string, data []byte) bool {
	lower := strings.ToLower(location)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return true
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] != '{' && trimmed[0] != '['
}
