package main

import (
	"fmt"

	"github.com/GlintPay/gsbc/render"
	"github.com/google/renameio/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	target  string
	format  string
	out     string
	pretty  bool
	flatten bool
}

func newRenderCommand(g *globals) *cobra.Command {
	flags := renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the build configuration for a deployment target",
		Example: `  gsbc render --target static --out astro.config.mjs
  gsbc render --target server --format json --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := flags.target
			if target == "" {
				target = g.envConfig.DeployTarget
			}

			format, err := render.ParseFormat(flags.format)
			if err != nil {
				return err
			}

			resolver, err := g.newResolver()
			if err != nil {
				return err
			}

			cfg, err := resolver.Resolve(target)
			if err != nil {
				return err
			}

			bs, err := render.Bytes(cfg, format, render.Options{Pretty: flags.pretty, Flatten: flags.flatten})
			if err != nil {
				return err
			}

			if flags.out == "" || flags.out == "-" {
				_, err = cmd.OutOrStdout().Write(bs)
				return err
			}

			if err := renameio.WriteFile(flags.out, bs, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", flags.out, err)
			}
			log.Info().Msgf("Wrote %s configuration for target [%s] to %s", format, target, flags.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.target, "target", "t", "", "deployment target: server or static (default: $DEPLOY_TARGET)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(render.FormatMJS), "output format: mjs, json or yaml")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "indent JSON output")
	cmd.Flags().BoolVar(&flags.flatten, "flatten", false, "dot-joined keys for JSON and YAML output")

	return cmd
}
