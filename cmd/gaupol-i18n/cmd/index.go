package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/devcompl/gaupol/pkg/catalog"
	"github.com/devcompl/gaupol/pkg/locales"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	verboseKey  = "verbose"
	configKey   = "config"
	rootKey     = "root"
	outputKey   = "output"
	xgettextKey = "xgettext"
	msgmergeKey = "msgmerge"
	msgfmtKey   = "msgfmt"
)

var (
	log          *slog.Logger
	indexCommand = &cobra.Command{
		Use:   "gaupol-i18n",
		Short: "Translation maintenance tool for the Gaupol project tree",
		Long: `Translation maintenance tool for the Gaupol project tree. Updates the translation template with xgettext, merges and compiles the per-language catalogs with msgmerge and msgfmt, and reports their translation status.

For more information, please visit https://github.com/devcompl/gaupol.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts := &slog.HandlerOptions{}
			if viper.GetBool(verboseKey) {
				opts.Level = slog.LevelDebug
			}
			log = slog.New(slog.NewJSONHandler(os.Stderr, opts))

			if viper.IsSet(configKey) {
				viper.SetConfigFile(viper.GetString(configKey))

				log.Debug("Config key set, reading from file", "path", viper.GetViper().ConfigFileUsed())

				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			} else {
				configBase := xdg.ConfigHome
				configName := cmd.Root().Use

				viper.SetConfigName(configName)
				viper.AddConfigPath(configBase)

				log.Debug("Config key not set, reading from default location", "path", filepath.Join(configBase, configName))

				if err := viper.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
					return err
				}
			}

			return nil
		},
	}
)

func Execute() error {
	indexCommand.PersistentFlags().BoolP(verboseKey, "v", false, "Whether to enable verbose logging")
	indexCommand.PersistentFlags().StringP(configKey, "c", "", "Config file to use (by default "+indexCommand.Use+".yaml in the XDG config directory is read if it exists)")
	indexCommand.PersistentFlags().StringP(rootKey, "r", "", "Project root to operate on (by default the parent of the directory the binary is installed in)")
	indexCommand.PersistentFlags().StringP(outputKey, "o", catalog.DefaultOutput, "Translation template path relative to the project root")
	indexCommand.PersistentFlags().String(xgettextKey, catalog.DefaultTool, "Extraction tool to invoke")
	indexCommand.PersistentFlags().String(msgmergeKey, locales.DefaultMergeTool, "Merge tool to invoke")
	indexCommand.PersistentFlags().String(msgfmtKey, locales.DefaultCompileTool, "Catalog compiler to invoke")

	if err := viper.BindPFlags(indexCommand.PersistentFlags()); err != nil {
		return err
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return indexCommand.Execute()
}

// resolveRoot prefers an explicitly configured root over the one derived from
// the binary's own location.
func resolveRoot() (string, error) {
	if root := viper.GetString(rootKey); root != "" {
		return filepath.Abs(root)
	}

	return catalog.ResolveRoot()
}
