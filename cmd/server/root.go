package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/config"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/logging"
)

const appVersion = "0.1.0"

var (
	v   *viper.Viper
	cfg *config.Config

	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "livros",
	Short: "Personal book collection backend",
	Long: `livros searches Google Books, keeps the books you pick in a
database, lets you rate them and exports the collection as CSV.

Run 'livros' with no arguments to start the HTTP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       appVersion,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	v = config.New()

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")
	pf.String("db-driver", "", "Database driver (postgres or sqlite)")
	pf.String("database-url", "", "Database DSN, overrides the DB_* parts")

	_ = v.BindPFlag("LOG_LEVEL", pf.Lookup("log-level"))
	_ = v.BindPFlag("DB_DRIVER", pf.Lookup("db-driver"))
	_ = v.BindPFlag("DATABASE_URL", pf.Lookup("database-url"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		color.NoColor = color.NoColor || flagNoColor

		var err error
		cfg, err = config.FromViper(v)
		if err != nil {
			return err
		}

		logging.Setup(cfg.LogLevel, cfg.GinMode != "release")
		return nil
	}

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newExportCmd())
}

func ok(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.GreenString("✓"), fmt.Sprintf(format, a...))
}

func warn(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("!"), fmt.Sprintf(format, a...))
}
