package main

import (
	"github.com/GlintPay/gsbc/build"
	"github.com/GlintPay/gsbc/config"
	"github.com/GlintPay/gsbc/logging"
	"github.com/spf13/cobra"
)

type globals struct {
	envConfig config.Configuration
	appConfig config.ApplicationConfiguration
}

func newRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   serviceName,
		Short: "Site build configuration resolver",
		Long:  "Resolves a deployment target (server or static) into a validated site build configuration.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if g.envConfig, err = config.LoadEnv(); err != nil {
				return err
			}
			if g.appConfig, err = config.Load(g.envConfig.ApplicationConfigFileYmlPath); err != nil {
				return err
			}
			logging.SetLevel(g.appConfig.Logging.Level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCommand(g), newRenderCommand(g), newValidateCommand(g))
	return rootCmd
}

func (g *globals) newResolver() (*build.Resolver, error) {
	return build.NewResolver(g.appConfig.Site.Url)
}
