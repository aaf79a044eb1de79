package cmd

import (
	"context"
	"os"

	"github.com/devcompl/gaupol/pkg/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gopkg.in/yaml.v3"
)

const (
	dryRunKey = "dry-run"
)

var potCommand = &cobra.Command{
	Use:     "pot",
	Aliases: []string{"template", "t"},
	Short:   "Update the translation template",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		root, err := resolveRoot()
		if err != nil {
			return err
		}

		runner := catalog.NewRunner(root, log)
		runner.Output = viper.GetString(outputKey)
		runner.Tool = viper.GetString(xgettextKey)

		if viper.GetBool(dryRunKey) {
			log.Debug("Planning template update", "root", root)

			plan, err := runner.Plan()
			if err != nil {
				return err
			}

			return yaml.NewEncoder(os.Stdout).Encode(plan)
		}

		log.Debug("Updating translation template", "root", root, "output", runner.Output)

		return runner.Update(ctx)
	},
}

func init() {
	potCommand.PersistentFlags().Bool(dryRunKey, false, "Whether to print the planned invocations instead of running them")

	viper.AutomaticEnv()

	indexCommand.AddCommand(potCommand)
}
