// config.go implements "pathoracle config" for configuration management.
//
// Design: Config follows a cascade model similar to git: local config
// (.pathoracle/config.yaml) takes precedence over global
// (~/.pathoracle/config.yaml). The --local flag forces use of local config
// even if it doesn't exist yet.

package cmd

import (
	"fmt"
	"sort"

	"github.com/jpl-au/pathoracle/internal/config"
	"github.com/jpl-au/pathoracle/internal/log"
	"github.com/spf13/cobra"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "View or set config values",
	Long: `View or set config values.

  pathoracle config                        # show config
  pathoracle config dialect                # show dialect value
  pathoracle config dialect node           # set dialect
  pathoracle config cwd /home/user/project # pin the working directory
  pathoracle config history.enabled true   # record runs

Configuration locations:
  Global: ~/.pathoracle/config.yaml
  Local:  .pathoracle/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(c *cobra.Command, args []string) error {
	var conf *config.Config
	var err error
	if configLocal {
		conf, err = config.LoadScope(config.ScopeLocal)
	} else {
		conf, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(c, fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if conf.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := conf.All()
		log.Event("cli:config", "list").Write(nil)
		if JSON() {
			return PrintJSON(all)
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := conf.Get(args[0])
		log.Event("cli:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(c, fmt.Errorf("config get %q: %w", args[0], err))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)

	case 2:
		if err := conf.Set(args[0], args[1]); err != nil {
			log.Event("cli:config", "set").Detail("key", args[0]).Write(err)
			return PrintJSONError(c, fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := conf.Save()
		log.Event("cli:config", "set").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(c, fmt.Errorf("config save: %w", saveErr))
		}
		if JSON() {
			return PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Use local config (.pathoracle/config.yaml)")
	configCmd.ValidArgsFunction = func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	rootCmd.AddCommand(configCmd)
}
