package render

import (
	"sort"

	"github.com/GlintPay/gsbc/build"
)

// Module is a framework package imported by the generated config
type Module struct {
	Name   string // local identifier, also the factory call
	Import string
	Order  int // lower is earlier
}

type Modules []Module

type Sorter struct {
	Modules Modules
}

func (ss Sorter) Sort() func(i, j int) bool {
	return func(i, j int) bool {
		return ss.Modules[i].Order < ss.Modules[j].Order
	}
}

var integrationModules = map[build.Integration]Module{
	build.IntegrationMDX:      {Name: "mdx", Import: "@astrojs/mdx", Order: 1},
	build.IntegrationSitemap:  {Name: "sitemap", Import: "@astrojs/sitemap", Order: 2},
	build.IntegrationTailwind: {Name: "tailwind", Import: "@astrojs/tailwind", Order: 3},
}

var adapterModules = map[build.AdapterKind]Module{
	build.AdapterServerless: {Name: "vercel", Import: "@astrojs/vercel/serverless"},
	build.AdapterStaticHost: {Name: "vercel", Import: "@astrojs/vercel/static"},
}

func IntegrationModules(cfg build.Configuration) Modules {
	modules := make(Modules, 0, len(integrationModules))
	for _, each := range cfg.Integrations() {
		if m, ok := integrationModules[each]; ok {
			modules = append(modules, m)
		}
	}
	sort.SliceStable(modules, Sorter{Modules: modules}.Sort())
	return modules
}

func AdapterModule(cfg build.Configuration) (Module, bool) {
	m, ok := adapterModules[cfg.AdapterKind()]
	return m, ok
}
