package build

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/emirpasic/gods/sets/hashset"
)

// Configuration is a validated, read-only build configuration. Construct it via Resolver.Resolve or FromDocument.
type Configuration struct {
	siteURL          string
	outputMode       OutputMode
	adapterKind      AdapterKind
	analyticsEnabled bool
	integrations     []Integration
}

func (c Configuration) SiteURL() string {
	return c.siteURL
}

func (c Configuration) OutputMode() OutputMode {
	return c.outputMode
}

func (c Configuration) AdapterKind() AdapterKind {
	return c.adapterKind
}

func (c Configuration) AnalyticsEnabled() bool {
	return c.analyticsEnabled
}

// Integrations returns a sorted copy of the integration set
func (c Configuration) Integrations() []Integration {
	return slices.Clone(c.integrations)
}

func (c Configuration) HasIntegration(i Integration) bool {
	return slices.Contains(c.integrations, i)
}

func (c Configuration) Document() Document {
	return Document{
		Site:   c.siteURL,
		Output: c.outputMode,
		Adapter: AdapterDocument{
			Kind:         c.adapterKind,
			WebAnalytics: WebAnalytics{Enabled: c.analyticsEnabled},
		},
		Integrations: c.Integrations(),
	}
}

// Validate checks every field and the output / adapter pairing
func (c Configuration) Validate() error {
	if _, err := parseSiteURL(c.siteURL); err != nil {
		return err
	}

	wantAdapter, ok := adapterForOutput[c.outputMode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOutputMode, c.outputMode)
	}

	if c.adapterKind != AdapterServerless && c.adapterKind != AdapterStaticHost {
		return fmt.Errorf("%w: %q", ErrInvalidAdapterKind, c.adapterKind)
	}

	if c.adapterKind != wantAdapter {
		return fmt.Errorf("%w: output %q requires adapter %q, got %q", ErrAdapterMismatch, c.outputMode, wantAdapter, c.adapterKind)
	}

	return validateIntegrations(c.integrations)
}

// FromDocument builds a Configuration from its serialised form, rejecting anything Resolve could not have produced
func FromDocument(doc Document) (Configuration, error) {
	cfg := Configuration{
		siteURL:          doc.Site,
		outputMode:       doc.Output,
		adapterKind:      doc.Adapter.Kind,
		analyticsEnabled: doc.Adapter.WebAnalytics.Enabled,
		integrations:     slices.Clone(doc.Integrations),
	}
	slices.Sort(cfg.integrations)

	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

func validateIntegrations(integrations []Integration) error {
	seen := hashset.New()
	for _, each := range integrations {
		if !slices.Contains(allIntegrations, each) {
			return fmt.Errorf("%w: unknown %q", ErrInvalidIntegration, each)
		}
		if seen.Contains(each) {
			return fmt.Errorf("%w: duplicate %q", ErrInvalidIntegration, each)
		}
		seen.Add(each)
	}

	if seen.Size() != len(allIntegrations) {
		return fmt.Errorf("%w: expected %v, got %v", ErrInvalidIntegration, allIntegrations, integrations)
	}
	return nil
}

func parseSiteURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSiteURL, err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q is not an absolute http(s) url", ErrInvalidSiteURL, raw)
	}
	return u, nil
}
