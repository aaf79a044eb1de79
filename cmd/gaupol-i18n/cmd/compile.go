package cmd

import (
	"context"

	"github.com/devcompl/gaupol/pkg/locales"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var compileCommand = &cobra.Command{
	Use:     "compile",
	Aliases: []string{"com", "c"},
	Short:   "Compile the per-language catalogs to binary form",
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

		compiler := locales.NewCompiler(root, log)
		compiler.Tool = viper.GetString(msgfmtKey)

		log.Debug("Compiling catalogs", "root", root)

		return compiler.Run(ctx)
	},
}

func init() {
	viper.AutomaticEnv()

	indexCommand.AddCommand(compileCommand)
}
