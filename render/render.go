package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/GlintPay/gsbc/build"
	"github.com/GlintPay/gsbc/utils"
	"github.com/Masterminds/sprig"
	"sigs.k8s.io/yaml"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatMJS  Format = "mjs"
)

var ErrUnknownFormat = errors.New("unknown format")

// ErrSingleOnly is returned when a format can only describe one configuration at a time
var ErrSingleOnly = errors.New("format supports a single configuration only")

type Options struct {
	Pretty  bool
	Flatten bool // dot-joined keys, ignored for mjs
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatMJS:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatMJS:
		return "text/javascript"
	default:
		return "application/json"
	}
}

func Write(w io.Writer, cfg build.Configuration, format Format, opts Options) error {
	bs, err := Bytes(cfg, format, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

func Bytes(cfg build.Configuration, format Format, opts Options) ([]byte, error) {
	if format == FormatMJS {
		return moduleBytes(cfg)
	}

	val, err := Value(cfg, opts)
	if err != nil {
		return nil, err
	}
	return Marshal(val, format, opts)
}

// Value returns the Document, or its flattened map form
func Value(cfg build.Configuration, opts Options) (any, error) {
	doc := cfg.Document()
	if !opts.Flatten {
		return doc, nil
	}

	bs, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var hierarchical map[string]any
	if e := json.Unmarshal(bs, &hierarchical); e != nil {
		return nil, e
	}
	return utils.Flatten(hierarchical, utils.DotJoiner), nil
}

// Marshal encodes an arbitrary value produced by Value, or a map of them
func Marshal(val any, format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		if opts.Pretty {
			return json.MarshalIndent(val, "", "  ")
		}
		return json.Marshal(val)
	case FormatYAML:
		return yaml.Marshal(val)
	case FormatMJS:
		return nil, ErrSingleOnly
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

const moduleTemplate = `import { defineConfig } from "astro/config";
{{ range .Integrations -}}
import {{ .Name }} from {{ .Import | quote }};
{{ end -}}
import {{ .Adapter.Name }} from {{ .Adapter.Import | quote }};

// https://astro.build/config
export default defineConfig({
  site: {{ .Site | quote }},
  integrations: [{{ .Calls | join ", " }}],
  output: {{ .Output | squote }},
  adapter: {{ .Adapter.Name }}({
    webAnalytics: {
      enabled: {{ .Analytics }},
    },
  }),
});
`

var moduleTmpl = template.Must(template.New("astro.config.mjs").Funcs(sprig.TxtFuncMap()).Parse(moduleTemplate))

type moduleData struct {
	Site         string
	Output       string
	Integrations Modules
	Calls        []string
	Adapter      Module
	Analytics    bool
}

func moduleBytes(cfg build.Configuration) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	adapter, ok := AdapterModule(cfg)
	if !ok {
		return nil, fmt.Errorf("no adapter module for %q", cfg.AdapterKind())
	}

	integrations := IntegrationModules(cfg)
	calls := make([]string, 0, len(integrations))
	for _, each := range integrations {
		calls = append(calls, each.Name+"()")
	}

	var buf bytes.Buffer
	err := moduleTmpl.Execute(&buf, moduleData{
		Site:         cfg.SiteURL(),
		Output:       string(cfg.OutputMode()),
		Integrations: integrations,
		Calls:        calls,
		Adapter:      adapter,
		Analytics:    cfg.AnalyticsEnabled(),
	})
	if err != nil {
		return nil, fmt.Errorf("render module: %w", err)
	}
	return buf.Bytes(), nil
}
