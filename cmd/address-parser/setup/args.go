package setup

import (
	"context"
	"fmt"

	"github.com/cordialsys/address-parser/config"
	"github.com/cordialsys/address-parser/factory"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

type ContextKey string

const ContextFactory ContextKey = "factory"

// Prefix of the environment variables read by envconfig, e.g. ADDRESS_PARSER_LISTEN
const EnvPrefix = "ADDRESS_PARSER"

func WrapFactory(ctx context.Context, f *factory.Factory) context.Context {
	return context.WithValue(ctx, ContextFactory, f)
}

func UnwrapFactory(ctx context.Context) *factory.Factory {
	return ctx.Value(ContextFactory).(*factory.Factory)
}

type Args struct {
	VerbosityCount    int
	ConfigPath        string
	UseDisabledTokens bool
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
	cmd.PersistentFlags().String("config", "", "Path to a config.yaml overriding the default token table. Optional.")
	cmd.PersistentFlags().Bool("include-disabled", false, "Include tokens marked disabled in the configuration.")
}

func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	count, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return nil, err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	includeDisabled, err := cmd.Flags().GetBool("include-disabled")
	if err != nil {
		return nil, err
	}
	return &Args{
		VerbosityCount:    count,
		ConfigPath:        configPath,
		UseDisabledTokens: includeDisabled,
	}, nil
}

func ConfigureLogger(args *Args) error {
	return config.ConfigureLogger(args.VerbosityCount)
}

func LoadFactory(args *Args) (*factory.Factory, error) {
	return factory.NewFactory(&factory.FactoryOptions{
		ConfigPath:        args.ConfigPath,
		UseDisabledTokens: args.UseDisabledTokens,
	})
}

// ProcessEnv fills dst from ADDRESS_PARSER_* environment variables
func ProcessEnv(dst interface{}) error {
	if err := envconfig.Process(EnvPrefix, dst); err != nil {
		return fmt.Errorf("failed to process env var: %w", err)
	}
	return nil
}
