package test

import (
	"testing"

	"github.com/GlintPay/gsbc/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalFlattenedJSON(t *testing.T) {
	flat := `{"adapter.kind":"staticHost","adapter.webAnalytics.enabled":true,"integrations":["mdx","sitemap","tailwind"],"output":"static","site":"https://www.jamesdawson.dev"}`

	var doc build.Document
	require.NoError(t, UnmarshalFlattenedJSON([]byte(flat), &doc))

	assert.Equal(t, build.Document{
		Site:         "https://www.jamesdawson.dev",
		Output:       build.OutputStatic,
		Adapter:      build.AdapterDocument{Kind: build.AdapterStaticHost, WebAnalytics: build.WebAnalytics{Enabled: true}},
		Integrations: []build.Integration{"mdx", "sitemap", "tailwind"},
	}, doc)
}

func TestUnmarshalFlattenedJSON_Junk(t *testing.T) {
	var doc build.Document
	assert.Error(t, UnmarshalFlattenedJSON([]byte(`junk`), &doc))
}
