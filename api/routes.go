package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/GlintPay/gsbc/build"
	"github.com/GlintPay/gsbc/config"
	"github.com/GlintPay/gsbc/render"
	"github.com/GlintPay/gsbc/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog"
	"github.com/riandyrn/otelchi"
	"github.com/rs/zerolog/log"
)

const (
	applicationJSON = "application/json"
)

type Routing struct {
	ServerName   string
	ParentRouter chi.Router

	AppConfig     config.ApplicationConfiguration
	DefaultTarget string
	Source        ResolverSource
	Metrics       *Metrics
}

func (rtr *Routing) SetupFunctionalRoutes(r chi.Router) error {
	if rtr.Source == nil {
		return errors.New("no resolver source configured")
	}

	if e := rtr.enableOTelForRouter(r); e != nil {
		return e
	}

	if rtr.AppConfig.Defaults.LogRequests {
		r.Use(httplog.RequestLogger(log.With().Str("service", rtr.ServerName).Logger()))
	}

	r.Get("/targets", rtr.targetsHandler())
	r.Get("/config", rtr.configurationHandler())
	r.Get("/config/{targets}", rtr.configurationHandler())

	return nil
}

func (rtr *Routing) configurationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		req, err := rtr.newRequestFromChi(r)
		if err != nil {
			rtr.writeError(w, err)
			return
		}

		resolved, err := ResolveTargets(r.Context(), rtr.Source.Resolver(), req, rtr.Metrics)
		if err != nil {
			rtr.writeError(w, err)
			return
		}

		opts := render.Options{Pretty: req.PrettyPrintJson, Flatten: req.Flatten}

		var configBytes []byte
		var outputErr error

		if len(resolved) == 1 {
			writeHeaders(w.Header(), resolved[0])
			configBytes, outputErr = render.Bytes(resolved[0].Configuration, req.Format, opts)
		} else {
			configBytes, outputErr = marshalMultiple(resolved, req.Format, opts)
		}

		rtr.handleOutput(w, outputErr, configBytes, req.Format, req.LogResponses)
	}
}

func (rtr *Routing) targetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bs, err := json.Marshal(build.Selectors())
		rtr.handleOutput(w, err, bs, render.FormatJSON, false)
	}
}

func marshalMultiple(resolved []ResolvedTarget, format render.Format, opts render.Options) ([]byte, error) {
	values := make(map[string]any, len(resolved))
	for _, each := range resolved {
		val, err := render.Value(each.Configuration, opts)
		if err != nil {
			return nil, err
		}
		values[each.Target] = val
	}
	return render.Marshal(values, format, opts)
}

func writeHeaders(header http.Header, resolved ResolvedTarget) {
	header.Set("X-Resolution-Target", resolved.Target)
	header.Set("X-Resolution-Output", string(resolved.Configuration.OutputMode()))
	header.Set("X-Resolution-Adapter", string(resolved.Configuration.AdapterKind()))
	header.Set("X-Resolution-Site", resolved.Configuration.SiteURL())
}

func (rtr *Routing) handleOutput(w http.ResponseWriter, err error, bytes []byte, format render.Format, logResponses bool) {
	if err != nil {
		rtr.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	_, _ = w.Write(bytes)

	if logResponses {
		log.Debug().Msgf("Response: %s", string(bytes))
	}
}

func (rtr *Routing) writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", applicationJSON)
	w.WriteHeader(statusFor(err))

	info := map[string]interface{}{"message": err.Error()}
	_ = json.NewEncoder(w).Encode(info)

	log.Error().Err(err).Stack().Msg("Response error")
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, build.ErrInvalidSelector),
		errors.Is(err, render.ErrUnknownFormat),
		errors.Is(err, render.ErrSingleOnly):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (rtr *Routing) newRequestFromChi(r *http.Request) (ConfigurationRequest, error) {
	targetsCsv := chi.URLParam(r, "targets")
	if targetsCsv == "" {
		targetsCsv = rtr.DefaultTarget
	}

	queries := r.URL.Query()

	formatVal := queries.Get("format")
	if formatVal == "" {
		formatVal = rtr.AppConfig.Defaults.Format
	}
	format, err := render.ParseFormat(formatVal)
	if err != nil {
		return ConfigurationRequest{}, err
	}

	return ConfigurationRequest{
		Targets: utils.SplitTargets(targetsCsv),

		Format:          format,
		Flatten:         overrideBooleanDefault(queries.Get("flatten"), rtr.AppConfig.Defaults.FlattenHierarchicalConfig),
		LogResponses:    overrideBooleanDefault(queries.Get("logResponses"), rtr.AppConfig.Defaults.LogResponses),
		PrettyPrintJson: overrideBooleanDefault(queries.Get("pretty"), rtr.AppConfig.Defaults.PrettyPrintJson),

		EnableTrace: rtr.AppConfig.Tracing.Enabled,
	}, nil
}

func (rtr *Routing) enableOTelForRouter(r chi.Router) error {
	if !rtr.AppConfig.Tracing.Enabled {
		return nil
	}

	if rtr.ServerName == "" || rtr.ParentRouter == nil {
		return errors.New("OTel not configured")
	}

	r.Use(otelchi.Middleware(rtr.ServerName, otelchi.WithChiRoutes(rtr.ParentRouter)))

	log.Info().Msgf("OpenTelemetry trace is enabled")
	return nil
}

func overrideBooleanDefault(queryValue string, defaultVal bool) bool {
	reqVal := strings.ToLower(queryValue)
	if reqVal == "true" {
		return true
	} else if reqVal == "false" {
		return false
	}
	return defaultVal
}
