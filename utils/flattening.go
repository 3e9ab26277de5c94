package utils

import "strings"

// DotJoiner joins hierarchical keys as `adapter.webAnalytics.enabled`
var DotJoiner = func(k []string) string {
	return strings.Join(k, ".")
}

// Flatten take a hierarchy and flatten it using the tokenizer supplied
func Flatten(m map[string]any, tokenizer func([]string) string) map[string]any {
	var r = make(map[string]any)
	flattenRecursive(m, []string{}, func(ks []string, v any) {
		r[tokenizer(ks)] = v
	})
	return r
}

func flattenRecursive(m map[string]any, ks []string, cb func([]string, any)) {
	for k, v := range m {
		newks := append(ks[:len(ks):len(ks)], k)
		if newm, ok := v.(map[string]any); ok {

			// Empty maps are kept as leaves rather than dropped
			if len(newm) == 0 {
				cb(newks, v)
				continue
			}

			flattenRecursive(newm, newks, cb)
		} else {
			cb(newks, v)
		}
	}
}
