package build

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		selector    string
		wantOutput  OutputMode
		wantAdapter AdapterKind
	}{
		{selector: "server", wantOutput: OutputServer, wantAdapter: AdapterServerless},
		{selector: "static", wantOutput: OutputStatic, wantAdapter: AdapterStaticHost},
	}

	resolver, err := NewResolver(DefaultSiteURL)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := resolver.Resolve(tt.selector)
			require.NoError(t, err)

			assert.Equal(t, tt.wantOutput, got.OutputMode())
			assert.Equal(t, tt.wantAdapter, got.AdapterKind())
			assert.Equal(t, DefaultSiteURL, got.SiteURL())
			assert.True(t, got.AnalyticsEnabled())
			assert.Equal(t, []Integration{IntegrationMDX, IntegrationSitemap, IntegrationTailwind}, got.Integrations())
			assert.NoError(t, got.Validate())

			assert.Equal(t, string(tt.wantOutput), tt.selector)
		})
	}
}

func TestResolve_Documents(t *testing.T) {
	resolver, err := NewResolver(DefaultSiteURL)
	require.NoError(t, err)

	server, err := resolver.Resolve("server")
	require.NoError(t, err)
	assert.Equal(t, Document{
		Site:         "https://www.jamesdawson.dev",
		Output:       OutputServer,
		Adapter:      AdapterDocument{Kind: AdapterServerless, WebAnalytics: WebAnalytics{Enabled: true}},
		Integrations: []Integration{"mdx", "sitemap", "tailwind"},
	}, server.Document())

	static, err := resolver.Resolve("static")
	require.NoError(t, err)
	assert.Equal(t, Document{
		Site:         "https://www.jamesdawson.dev",
		Output:       OutputStatic,
		Adapter:      AdapterDocument{Kind: AdapterStaticHost, WebAnalytics: WebAnalytics{Enabled: true}},
		Integrations: []Integration{"mdx", "sitemap", "tailwind"},
	}, static.Document())
}

func TestResolve_InvalidSelector(t *testing.T) {
	resolver, err := NewResolver(DefaultSiteURL)
	require.NoError(t, err)

	for _, each := range []string{"edge", "", "Server", " static", "serverless", "staticHost"} {
		t.Run(each, func(t *testing.T) {
			got, err := resolver.Resolve(each)
			assert.ErrorIs(t, err, ErrInvalidSelector)
			assert.Equal(t, Configuration{}, got)
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	resolver, err := NewResolver(DefaultSiteURL)
	require.NoError(t, err)

	first, err := resolver.Resolve("static")
	require.NoError(t, err)
	second, err := resolver.Resolve("static")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_Concurrent(t *testing.T) {
	resolver, err := NewResolver(DefaultSiteURL)
	require.NoError(t, err)

	expected, err := resolver.Resolve("server")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Configuration, 20)
	for i := range results {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], _ = resolver.Resolve("server")
		}(i)
	}
	wg.Wait()

	for _, each := range results {
		assert.Equal(t, expected, each)
	}
}

func TestResolve_IntegrationsAreCopies(t *testing.T) {
	resolver, err := NewResolver(DefaultSiteURL)
	require.NoError(t, err)

	cfg, err := resolver.Resolve("server")
	require.NoError(t, err)

	list := cfg.Integrations()
	list[0] = "junk"

	assert.Equal(t, IntegrationMDX, cfg.Integrations()[0])
	assert.True(t, cfg.HasIntegration(IntegrationMDX))
	assert.False(t, cfg.HasIntegration("junk"))

	again, err := resolver.Resolve("server")
	require.NoError(t, err)
	assert.Equal(t, IntegrationMDX, again.Integrations()[0])
}

func TestNewResolver(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https", url: "https://www.jamesdawson.dev", wantErr: false},
		{name: "http with path", url: "http://localhost:4321/blog", wantErr: false},
		{name: "relative", url: "/blog", wantErr: true},
		{name: "no host", url: "https://", wantErr: true},
		{name: "other scheme", url: "ftp://example.com", wantErr: true},
		{name: "empty", url: "", wantErr: true},
		{name: "garbage", url: "http://[::1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewResolver(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSiteURL)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.url, got.SiteURL())
			}
		})
	}
}

func TestParseSelector(t *testing.T) {
	s, err := ParseSelector("static")
	assert.NoError(t, err)
	assert.Equal(t, SelectorStatic, s)

	_, err = ParseSelector("edge")
	assert.ErrorIs(t, err, ErrInvalidSelector)
	assert.EqualError(t, err, `invalid selector: "edge" (expected one of [server static])`)
}
