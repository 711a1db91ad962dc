package set

import (
	"github.com/spf13/cobra"
	"github.com/syntacticsugarglider/redis-backed/cmd/util"
	"github.com/syntacticsugarglider/redis-backed/lib/session"
)

var (
	db *session.Database

	// SetCommands represents the set command group
	SetCommands = &cobra.Command{
		Use:               "set",
		Short:             "Perform typed set operations",
		PersistentPreRunE: setupSetClient,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return db.Close()
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the set command
	util.SetupClientFlags(SetCommands)

	// Add subcommands
	SetCommands.AddCommand(addCmd)
	SetCommands.AddCommand(removeCmd)
	SetCommands.AddCommand(containsCmd)
	SetCommands.AddCommand(countCmd)
	SetCommands.AddCommand(membersCmd)
	SetCommands.AddCommand(dropCmd)
	SetCommands.AddCommand(watchCmd)
}

// setupSetClient creates the shared database session
func setupSetClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	db, err = util.GetDatabase()
	return err
}
