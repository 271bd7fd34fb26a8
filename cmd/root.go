// Package cmd implements the parley command line interface.
package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/app"
	"github.com/parleyhq/parley/internal/config"
	"github.com/parleyhq/parley/internal/logger"
	"github.com/parleyhq/parley/internal/producer"
	"github.com/parleyhq/parley/internal/widget"
)

var (
	debugMode             bool
	quietMode             bool
	producerFlag          string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "parley",
	Short: "Terminal chat widget for a small business website",
	Long: `Parley simulates the customer-facing chat widget of a small business
website in the terminal: a launcher bubble with an unread badge, a delayed
typing indicator, quick-reply shortcuts, and an urgent escalation path.
Replies come from a scripted bot by default, or from any OpenAI-compatible
endpoint when configured.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&producerFlag, "producer", "", `Reply producer: "script" or "openai" (overrides config)`)
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("parley %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("parley %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if producerFlag != "" {
		cfg.SetProducer(producerFlag)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	defer logger.Close()

	prod, err := buildProducer(cfg)
	if err != nil {
		return err
	}

	delay := widget.DelayRange{
		Min: time.Duration(cfg.TypingDelayMinMs) * time.Millisecond,
		Max: time.Duration(cfg.TypingDelayMaxMs) * time.Millisecond,
	}

	ctrl := widget.New(prod, widget.WithDelayRange(delay))
	defer ctrl.Shutdown()

	m := app.New(cfg, ctrl, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

// buildProducer selects the reply producer from the config. The remote
// producer requires an API key in the environment; the scripted one is the
// default and needs nothing.
func buildProducer(cfg *config.Config) (widget.Producer, error) {
	switch cfg.GetProducer() {
	case config.ProducerOpenAI:
		key := config.APIKey()
		if key == "" {
			return nil, fmt.Errorf("the openai producer requires %s to be set", config.APIKeyEnvVar)
		}
		return producer.NewOpenAI(producer.OpenAIConfig{
			APIKey:       key,
			BaseURL:      cfg.OpenAIBaseURL,
			Model:        cfg.OpenAIModel,
			BusinessName: cfg.BusinessName,
		}), nil
	default:
		return producer.NewScript(cfg.BusinessName, cfg.WebsiteURL), nil
	}
}
