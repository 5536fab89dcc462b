package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trivia-quest/internal/handlers/commands"
)

var (
	attackMiss     bool
	attackCategory string
)

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Resolve one quiz answer against the current enemy",
	Long: `Attack with a correct answer, or pass --miss for a wrong one. Examples:

  attack --category science
  attack --miss`,
	Args: cobra.NoArgs,
	RunE: attack,
}

func init() {
	attackCmd.Flags().BoolVar(&attackMiss, "miss", false, "answer was wrong")
	attackCmd.Flags().StringVar(&attackCategory, "category", "", "question category for accuracy stats")
}

func attack(_ *cobra.Command, _ []string) error {
	args := map[string]any{"hit": !attackMiss}
	if attackCategory != "" {
		args["category"] = attackCategory
	}
	return execute(commands.OpAttack, args)
}
