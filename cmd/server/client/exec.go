package client

import (
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec [op] [args-json]",
	Short: "Run any game operation",
	Long: `Run a named operation with optional JSON arguments. Examples:

  exec start_combat
  exec select_adventure_skill '{"skillId": "risker"}'
  exec open_chest '{"cost": 100}'
  exec bulk_sell_weapons '{"ids": ["item_3", "item_4"]}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExec,
}

func runExec(_ *cobra.Command, args []string) error {
	raw := ""
	if len(args) == 2 {
		raw = args[1]
	}

	parsed, err := parseArgs(raw)
	if err != nil {
		return err
	}

	return execute(args[0], parsed)
}
