package cmd

import (
	"context"

	"github.com/devcompl/gaupol/pkg/locales"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var mergeCommand = &cobra.Command{
	Use:     "merge",
	Aliases: []string{"mer", "m"},
	Short:   "Merge the per-language catalogs against the translation template",
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

		merger := locales.NewMerger(root, viper.GetString(outputKey), log)
		merger.Tool = viper.GetString(msgmergeKey)

		log.Debug("Merging catalogs", "root", root, "template", merger.Template)

		return merger.Run(ctx)
	},
}

func init() {
	viper.AutomaticEnv()

	indexCommand.AddCommand(mergeCommand)
}
