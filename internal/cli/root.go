package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanbipark/worklog/internal/config"
	"github.com/hanbipark/worklog/internal/service"
)

var cfgFile string

// version is stamped by the release build via -ldflags.
var version = "dev"

// App holds what CLI commands need beyond the loaded configuration.
// Configuration is only final after cobra has parsed flags, so the report
// pipeline is built lazily through NewReportService instead of being wired
// up front.
type App struct {
	NewReportService func(cfg *config.Config) service.ReportService

	// Interactive is true when stdin and stdout are terminals. Prompts
	// and the spinner are suppressed otherwise.
	Interactive bool
}

// NewRootCmd creates the top-level "worklog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "worklog",
		Short:        "Jira worklog report generator",
		Long:         "worklog aggregates one author's Jira worklogs over a date range\ninto per-entry records, daily category totals, and grand totals.",
		SilenceUsage: true,
		Version:      version,
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	cobra.OnInitialize(initConfig)

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .worklog.yaml)")
	root.PersistentFlags().Bool("verbose", false, "log every upstream API call to stderr")
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	root.AddCommand(
		newReportCmd(app),
		newCategoriesCmd(),
		newAuthorsCmd(),
	)

	return root
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".worklog"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".worklog")
	}

	// Boolean defaults live here: ApplyDefaults cannot tell an explicit
	// false from an unset field.
	viper.SetDefault("report.include_parent", true)

	// jira.token becomes WORKLOG_JIRA_TOKEN and so on.
	viper.SetEnvPrefix("WORKLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine: env vars and flags can carry everything.
	_ = viper.ReadInConfig()
}
