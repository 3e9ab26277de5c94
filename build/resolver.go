package build

import (
	"fmt"
	"slices"
)

// Resolver maps a deployment target selector to a Configuration. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	siteURL string
}

func NewResolver(siteURL string) (*Resolver, error) {
	u, err := parseSiteURL(siteURL)
	if err != nil {
		return nil, err
	}
	return &Resolver{siteURL: u.String()}, nil
}

func (r *Resolver) SiteURL() string {
	return r.siteURL
}

func (r *Resolver) Resolve(selector string) (Configuration, error) {
	s, err := ParseSelector(selector)
	if err != nil {
		return Configuration{}, err
	}

	// Selector literals double as output modes
	mode := OutputMode(s)

	return Configuration{
		siteURL:          r.siteURL,
		outputMode:       mode,
		adapterKind:      adapterForOutput[mode],
		analyticsEnabled: true,
		integrations:     slices.Clone(allIntegrations),
	}, nil
}

func ParseSelector(selector string) (Selector, error) {
	s := Selector(selector)
	if !slices.Contains(Selectors(), s) {
		return "", fmt.Errorf("%w: %q (expected one of %v)", ErrInvalidSelector, selector, Selectors())
	}
	return s, nil
}
