// Root command for the hutch CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hutch/internal/inventory"
	"github.com/mesh-intelligence/hutch/internal/paths"
	"github.com/mesh-intelligence/hutch/internal/sqlite"
	"github.com/mesh-intelligence/hutch/pkg/types"
)

// app carries the global flag values and the config.yaml data_dir through
// to the subcommands. Each invocation builds a fresh command tree around a
// fresh app, so the console never leaks flag state between lines.
type app struct {
	flagConfigDir string
	flagDataDir   string

	// configDataDir holds the data_dir value loaded from config.yaml.
	// Set by PersistentPreRunE so all subcommands can use it.
	configDataDir string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "hutch",
		Short:         "Hutch tracks physical items stored in numbered bins",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			configDir, err := a.resolveConfigDir()
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}

			a.configDataDir = cfg.GetString(cfgKeyDataDir)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	cmd.PersistentFlags().StringVar(&a.flagDataDir, "data-dir", "", "data directory (default: platform data dir)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAddLocationCmd(a))
	cmd.AddCommand(newAddCmd(a))
	cmd.AddCommand(newItemsCmd(a))
	cmd.AddCommand(newLocationsCmd(a))
	cmd.AddCommand(newQuickaddCmd(a))
	cmd.AddCommand(newUndoCmd(a))
	cmd.AddCommand(newDeleteCmd(a))
	cmd.AddCommand(newDumpCmd(a))
	cmd.AddCommand(newConsoleCmd(a))
	cmd.AddCommand(newServeCmd(a))

	return cmd
}

// resolveConfigDir follows the precedence flag > HUTCH_CONFIG_DIR env >
// platform default.
func (a *app) resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(a.flagConfigDir)
}

// openStore resolves the data directory and opens the store. The caller
// must close it.
func (a *app) openStore() (*sqlite.Store, error) {
	dataDir, err := paths.ResolveDataDir(a.flagDataDir, a.configDataDir)
	if err != nil {
		return nil, err
	}
	return sqlite.Open(dataDir)
}

// resolveLocation canonicalizes a user-typed location fragment against the
// current location set.
func (a *app) resolveLocation(store *sqlite.Store, fragment string) (types.Location, error) {
	locs, err := store.Locations()
	if err != nil {
		return types.Location{}, err
	}
	return inventory.NewResolver().Resolve(fragment, locs)
}

// storeFlags reproduces the directory flags for commands the console
// re-executes.
func (a *app) storeFlags() []string {
	var flags []string
	if a.flagConfigDir != "" {
		flags = append(flags, "--config-dir", a.flagConfigDir)
	}
	if a.flagDataDir != "" {
		flags = append(flags, "--data-dir", a.flagDataDir)
	}
	return flags
}
