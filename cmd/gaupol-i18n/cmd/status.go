package cmd

import (
	"os"

	"github.com/devcompl/gaupol/pkg/locales"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gopkg.in/yaml.v3"
)

var statusCommand = &cobra.Command{
	Use:     "status",
	Aliases: []string{"sta", "s"},
	Short:   "Report the translation status of the per-language catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		root, err := resolveRoot()
		if err != nil {
			return err
		}

		log.Debug("Reporting catalog status", "root", root)

		statuses, err := locales.Report(root, log)
		if err != nil {
			return err
		}

		return yaml.NewEncoder(os.Stdout).Encode(statuses)
	},
}

func init() {
	viper.AutomaticEnv()

	indexCommand.AddCommand(statusCommand)
}
