package test

import (
	"encoding/json"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/wolfeidau/unflatten"
)

// UnmarshalFlattenedJSON decodes a flattened response, e.g. `adapter.kind: serverless`, into a
// hierarchical structure by regrouping dot-separated keys under common parents. Field names
// are taken from `json` tags.
func UnmarshalFlattenedJSON(data []byte, outputStruct any) error {
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	return MarshalHierarchicalTo(flat, outputStruct)
}

// MarshalHierarchicalTo Marshal a map of properties to a result structure, restructuring
// hierarchical properties, such that `adapter.kind: foo` and `adapter.webAnalytics.enabled: true`
// are grouped under a common parent.
func MarshalHierarchicalTo(v map[string]any, outputStruct any) error {
	return marshalTo(unflatten.Unflatten(v, func(k string) []string { return strings.Split(k, ".") }), outputStruct)
}

func marshalTo(source map[string]any, outputStruct any) error {
	config := &mapstructure.DecoderConfig{Metadata: nil, ZeroFields: true, TagName: "json", Result: outputStruct}
	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return err
	}

	return decoder.Decode(source)
}
