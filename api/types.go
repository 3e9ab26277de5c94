package api

import (
	"github.com/GlintPay/gsbc/build"
	"github.com/GlintPay/gsbc/render"
)

type ConfigurationRequest struct {
	Targets []string

	Format          render.Format
	Flatten         bool
	LogResponses    bool
	PrettyPrintJson bool

	EnableTrace bool
}

// ResolverSource supplies the current Resolver, which may be swapped by a reload
type ResolverSource interface {
	Resolver() *build.Resolver
}

type ResolvedTarget struct {
	Target        string
	Configuration build.Configuration
}
