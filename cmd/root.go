package cmd

import (
	"github.com/spf13/cobra"

	"mortgage-calc/config"
	"mortgage-calc/logger"
	"mortgage-calc/money"
)

var (
	cfg       config.Config
	formatter *money.Formatter
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mortgage-calc",
		Short:         "Amortization, mortgage and Florida deed-stamp calculators",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Init(cfg.Logging.Level)

			formatter, err = money.NewFormatter(cfg.Display.Locale, cfg.Display.CurrencyCode)
			return err
		},
	}

	root.AddCommand(serveCmd(), amortizeCmd(), mortgageCmd(), deedStampsCmd())
	return root
}
