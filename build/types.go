package build

type Selector string

const (
	SelectorServer Selector = "server"
	SelectorStatic Selector = "static"
)

type OutputMode string

const (
	OutputServer OutputMode = "server"
	OutputStatic OutputMode = "static"
)

type AdapterKind string

const (
	AdapterServerless AdapterKind = "serverless"
	AdapterStaticHost AdapterKind = "staticHost"
)

// Integration identifies a build-time plugin handed to the framework
type Integration string

const (
	IntegrationMDX      Integration = "mdx"
	IntegrationSitemap  Integration = "sitemap"
	IntegrationTailwind Integration = "tailwind"
)

const DefaultSiteURL = "https://www.jamesdawson.dev"

var allIntegrations = []Integration{IntegrationMDX, IntegrationSitemap, IntegrationTailwind}

var adapterForOutput = map[OutputMode]AdapterKind{
	OutputServer: AdapterServerless,
	OutputStatic: AdapterStaticHost,
}

// Selectors lists every recognised deployment target, in a stable order
func Selectors() []Selector {
	return []Selector{SelectorServer, SelectorStatic}
}

// Document is the serialisable view of a Configuration, shaped like the framework config it drives
type Document struct {
	Site         string          `json:"site"`
	Output       OutputMode      `json:"output"`
	Adapter      AdapterDocument `json:"adapter"`
	Integrations []Integration   `json:"integrations"`
}

type AdapterDocument struct {
	Kind         AdapterKind  `json:"kind"`
	WebAnalytics WebAnalytics `json:"webAnalytics"`
}

type WebAnalytics struct {
	Enabled bool `json:"enabled"`
}
