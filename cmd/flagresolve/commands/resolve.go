package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TimurManjosov/flagresolve"
	"github.com/TimurManjosov/flagresolve/internal/cli"
	"github.com/TimurManjosov/flagresolve/values"
)

var (
	targetingKey string
	attributes   []string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <flag[.path]>",
	Short: "Resolve a feature flag",
	Long: `Resolve a feature flag against the remote resolver and print its value,
assigned variant and reason.

Examples:
  flagresolve resolve my-flag --secret sec-123
  flagresolve resolve my-flag.color --targeting-key user-42 --set plan=premium
  flagresolve resolve my-flag --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		cfg, err := resolveConfig()
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		provider, err := flagresolve.New(*cfg)
		if err != nil {
			return fmt.Errorf("failed to create provider: %w", err)
		}
		defer provider.Shutdown()

		attrs, err := parseAttributes(attributes)
		if err != nil {
			return err
		}
		evalCtx := flagresolve.EvaluationContext{
			TargetingKey: targetingKey,
			Attributes:   attrs,
		}

		details := provider.ObjectEvaluation(context.Background(), key, values.Null(), evalCtx)

		if !quiet {
			return cli.PrintResult(&cli.Result{
				Flag:         key,
				Value:        details.Value.Interface(),
				Variant:      details.Variant,
				Reason:       details.Reason,
				ErrorCode:    string(details.ErrorCode),
				ErrorMessage: details.ErrorMessage,
			}, cli.OutputFormat(format))
		}

		return nil
	},
}

// resolveConfig merges command-line flags over the environment configuration.
func resolveConfig() (*flagresolve.Config, error) {
	cfg, err := flagresolve.LoadConfig()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if clientSecret != "" {
		cfg.ClientSecret = clientSecret
	}
	if verbose {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseAttributes turns repeated --set key=value pairs into context
// attributes. Values parse as JSON where possible, otherwise as strings, so
// --set beta=true produces a boolean and --set name=alice a string.
func parseAttributes(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	attrs := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid attribute %q: expected key=value", pair)
		}
		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			parsed = raw
		}
		attrs[key] = parsed
	}
	return attrs, nil
}

func init() {
	resolveCmd.Flags().StringVar(&targetingKey, "targeting-key", "", "Targeting key identifying the evaluated entity")
	resolveCmd.Flags().StringArrayVar(&attributes, "set", nil, "Context attribute as key=value (repeatable)")
	rootCmd.AddCommand(resolveCmd)
}
