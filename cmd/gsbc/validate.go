package main

import (
	"fmt"
	"os"

	"github.com/GlintPay/gsbc/build"
	"github.com/GlintPay/gsbc/utils"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func newValidateCommand(_ *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a JSON or YAML build configuration document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := validateFile(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (output=%s, adapter=%s, site=%s)\n",
				args[0], cfg.OutputMode(), cfg.AdapterKind(), cfg.SiteURL())
			return err
		},
	}
}

func validateFile(path string) (build.Configuration, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return build.Configuration{}, err
	}

	var doc build.Document
	if e := yaml.UnmarshalStrict(bs, &doc); e != nil {
		return build.Configuration{}, fmt.Errorf("%s: %w", utils.FriendlyFileName(path), e)
	}

	cfg, err := build.FromDocument(doc)
	if err != nil {
		return build.Configuration{}, fmt.Errorf("%s: %w", utils.FriendlyFileName(path), err)
	}
	return cfg, nil
}
