package list

import (
	"github.com/spf13/cobra"
	"github.com/syntacticsugarglider/redis-backed/cmd/util"
	"github.com/syntacticsugarglider/redis-backed/lib/session"
)

var (
	db *session.Database

	// ListCommands represents the list command group
	ListCommands = &cobra.Command{
		Use:               "list",
		Short:             "Perform typed list operations",
		PersistentPreRunE: setupListClient,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return db.Close()
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common connection flags to the list command
	util.SetupClientFlags(ListCommands)

	// Add subcommands
	ListCommands.AddCommand(pushFrontCmd)
	ListCommands.AddCommand(pushBackCmd)
	ListCommands.AddCommand(popFrontCmd)
	ListCommands.AddCommand(popBackCmd)
	ListCommands.AddCommand(indexCmd)
	ListCommands.AddCommand(setIndexCmd)
	ListCommands.AddCommand(rangeCmd)
	ListCommands.AddCommand(trimCmd)
	ListCommands.AddCommand(lenCmd)
	ListCommands.AddCommand(removeCmd)
	ListCommands.AddCommand(insertCmd)
	ListCommands.AddCommand(dropCmd)
	ListCommands.AddCommand(watchCmd)
	ListCommands.AddCommand(perfTestCmd)
}

// setupListClient creates the shared database session
func setupListClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	var err error
	db, err = util.GetDatabase()
	return err
}
