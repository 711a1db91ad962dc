package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/syntacticsugarglider/redis-backed/cmd/list"
	"github.com/syntacticsugarglider/redis-backed/cmd/set"
	"github.com/syntacticsugarglider/redis-backed/cmd/util"
)

const (
	Version = "0.2.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "redis-orm",
		Short: "typed collections backed by redis",
		Long: fmt.Sprintf(`redis-orm (v%s)

A client for typed redis-backed collections. Lists and sets store
serialized values under namespaced keys and can be watched for
keyspace notifications.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of redis-orm",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("redis-orm v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(list.ListCommands)
	RootCmd.AddCommand(set.SetCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "cbor", util.WrapString("serializer to use (cbor, json, gob)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
