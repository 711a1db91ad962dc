package set

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/syntacticsugarglider/redis-backed/lib/collections"
)

var (
	addCmd = &cobra.Command{
		Use:   "add [set] [value]",
		Short: "Adds a value to a set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := collections.GetSet[string](db, args[0])
			if err != nil {
				return err
			}
			if added, err := s.Add(cmd.Context(), args[1]); err != nil {
				return err
			} else {
				fmt.Printf("set=%s, added=%t\n", args[0], added)
			}
			return nil
		},
	}
	removeCmd = &cobra.Command{
		Use:   "remove [set] [value]",
		Short: "Removes a value from a set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := collections.GetSet[string](db, args[0])
			if err != nil {
				return err
			}
			if removed, err := s.Remove(cmd.Context(), args[1]); err != nil {
				return err
			} else {
				fmt.Printf("set=%s, removed=%t\n", args[0], removed)
			}
			return nil
		},
	}
	containsCmd = &cobra.Command{
		Use:   "contains [set] [value]",
		Short: "Checks if a value is in a set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := collections.GetSet[string](db, args[0])
			if err != nil {
				return err
			}
			if found, err := s.Contains(cmd.Context(), args[1]); err != nil {
				return err
			} else {
				fmt.Printf("set=%s, found=%t\n", args[0], found)
			}
			return nil
		},
	}
	countCmd = &cobra.Command{
		Use:   "count [set]",
		Short: "Prints the number of elements in a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := collections.GetSet[string](db, args[0])
			if err != nil {
				return err
			}
			if n, err := s.Count(cmd.Context()); err != nil {
				return err
			} else {
				fmt.Printf("set=%s, count=%d\n", args[0], n)
			}
			return nil
		},
	}
	membersCmd = &cobra.Command{
		Use:   "members [set]",
		Short: "Prints all elements of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := collections.GetSet[string](db, args[0])
			if err != nil {
				return err
			}
			members, err := s.Members(cmd.Context())
			if err != nil {
				return err
			}
			for _, member := range members {
				fmt.Println(member)
			}
			return nil
		},
	}
	dropCmd = &cobra.Command{
		Use:   "drop [set]",
		Short: "Deletes a set and all its elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := collections.GetSet[string](db, args[0])
			if err != nil {
				return err
			}
			if err := collections.Remove(cmd.Context(), s); err != nil {
				return err
			} else {
				fmt.Println("drop successfully")
			}
			return nil
		},
	}
)
