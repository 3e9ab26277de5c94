package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlintPay/gsbc/build"
	gotel "github.com/GlintPay/gsbc/otel"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
)

const invalidTargetLabel = "invalid"

// ResolveTargets resolves every requested target, failing on the first unrecognised one
func ResolveTargets(ctxt context.Context, resolver *build.Resolver, req ConfigurationRequest, metrics *Metrics) ([]ResolvedTarget, error) {
	log.Debug().Msgf("Requesting: %v", req.Targets)

	if req.EnableTrace {
		_, span := gotel.GetTracer(ctxt).Start(ctxt, "resolve", gotel.ServerOptions)
		span.SetAttributes(attribute.String("gsbc.targets", strings.Join(req.Targets, ",")))
		defer span.End()
	}

	if len(req.Targets) == 0 {
		return nil, fmt.Errorf("%w: no target given", build.ErrInvalidSelector)
	}

	resolved := make([]ResolvedTarget, 0, len(req.Targets))
	for _, each := range req.Targets {
		cfg, err := resolver.Resolve(each)
		if err != nil {
			metrics.observe(invalidTargetLabel, outcomeError)
			return nil, err
		}

		metrics.observe(each, outcomeOK)
		resolved = append(resolved, ResolvedTarget{Target: each, Configuration: cfg})
	}
	return resolved, nil
}
