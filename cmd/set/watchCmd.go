package set

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/syntacticsugarglider/redis-backed/cmd/util"
	"github.com/syntacticsugarglider/redis-backed/lib/collections"
)

var (
	watchCmd = &cobra.Command{
		Use:   "watch [set]",
		Short: "Prints modification events for a set until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if viper.GetBool("enable-notifications") {
				if err := db.EnableNotifications(ctx); err != nil {
					return err
				}
			}

			s, err := collections.GetSet[string](db, args[0])
			if err != nil {
				return err
			}
			w, err := s.Watch(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)
			defer signal.Stop(sigCh)

			fmt.Printf("watching set=%s (ctrl-c to stop)\n", args[0])
			for {
				select {
				case item, ok := <-w.Events():
					if !ok {
						// the stream ended on its own, report why
						return w.Err()
					}
					if item.Err != nil {
						fmt.Printf("event error: %v\n", item.Err)
						continue
					}
					fmt.Printf("event=%s\n", item.Event.Generic)
				case <-sigCh:
					return w.Close()
				}
			}
		},
	}
)

func init() {
	key := "enable-notifications"
	watchCmd.Flags().Bool(key, true, util.WrapString("Enable keyspace notifications on the server before watching"))
}
