package list

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/syntacticsugarglider/redis-backed/lib/collections"
)

var (
	pushFrontCmd = &cobra.Command{
		Use:   "push-front [list] [value]",
		Short: "Appends a value at the front of a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if err := l.PushFront(cmd.Context(), args[1]); err != nil {
				return err
			} else {
				fmt.Println("push-front successfully")
			}
			return nil
		},
	}
	pushBackCmd = &cobra.Command{
		Use:   "push-back [list] [value]",
		Short: "Appends a value at the back of a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if err := l.PushBack(cmd.Context(), args[1]); err != nil {
				return err
			} else {
				fmt.Println("push-back successfully")
			}
			return nil
		},
	}
	popFrontCmd = &cobra.Command{
		Use:   "pop-front [list]",
		Short: "Removes and prints the front value of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if value, ok, err := l.PopFront(cmd.Context()); err != nil {
				return err
			} else {
				fmt.Printf("list=%s, found=%v, value=%s\n", args[0], ok, value)
			}
			return nil
		},
	}
	popBackCmd = &cobra.Command{
		Use:   "pop-back [list]",
		Short: "Removes and prints the back value of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if value, ok, err := l.PopBack(cmd.Context()); err != nil {
				return err
			} else {
				fmt.Printf("list=%s, found=%v, value=%s\n", args[0], ok, value)
			}
			return nil
		},
	}
	indexCmd = &cobra.Command{
		Use:   "index [list] [index]",
		Short: "Prints the value at an index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if value, err := l.Index(cmd.Context(), index); err != nil {
				return err
			} else {
				fmt.Printf("list=%s, index=%d, value=%s\n", args[0], index, value)
			}
			return nil
		},
	}
	setIndexCmd = &cobra.Command{
		Use:   "set-index [list] [index] [value]",
		Short: "Replaces the value at an index",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("index must be a number: %w", err)
			}
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if err := l.SetIndex(cmd.Context(), index, args[2]); err != nil {
				return err
			} else {
				fmt.Println("set-index successfully")
			}
			return nil
		},
	}
	rangeCmd = &cobra.Command{
		Use:   "range [list] [start] [stop]",
		Short: "Prints the values between two indices (inclusive)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("start must be a number: %w", err)
			}
			stop, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("stop must be a number: %w", err)
			}
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			values, err := l.Range(cmd.Context(), start, stop)
			if err != nil {
				return err
			}
			for i, value := range values {
				fmt.Printf("%d: %s\n", start+int64(i), value)
			}
			return nil
		},
	}
	trimCmd = &cobra.Command{
		Use:   "trim [list] [start] [stop]",
		Short: "Trims a list to the given range (inclusive)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("start must be a number: %w", err)
			}
			stop, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("stop must be a number: %w", err)
			}
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if err := l.Trim(cmd.Context(), start, stop); err != nil {
				return err
			} else {
				fmt.Println("trim successfully")
			}
			return nil
		},
	}
	lenCmd = &cobra.Command{
		Use:   "len [list]",
		Short: "Prints the number of elements in a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if n, err := l.Len(cmd.Context()); err != nil {
				return err
			} else {
				fmt.Printf("list=%s, len=%d\n", args[0], n)
			}
			return nil
		},
	}
	removeCmd = &cobra.Command{
		Use:   "remove [list] [count] [value]",
		Short: "Removes occurrences of a value (count > 0 from the back, < 0 from the front, 0 all)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("count must be a number: %w", err)
			}
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if removed, err := l.Remove(cmd.Context(), count, args[2]); err != nil {
				return err
			} else {
				fmt.Printf("list=%s, removed=%d\n", args[0], removed)
			}
			return nil
		},
	}
	insertCmd = &cobra.Command{
		Use:   "insert [list] [before|after] [pivot] [value]",
		Short: "Inserts a value next to the first occurrence of a pivot",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			var found bool
			switch args[1] {
			case "before":
				found, err = l.InsertBefore(cmd.Context(), args[2], args[3])
			case "after":
				found, err = l.InsertAfter(cmd.Context(), args[2], args[3])
			default:
				return fmt.Errorf("position must be before or after, got %s", args[1])
			}
			if err != nil {
				return err
			}
			fmt.Printf("list=%s, pivot found=%t\n", args[0], found)
			return nil
		},
	}
	dropCmd = &cobra.Command{
		Use:   "drop [list]",
		Short: "Deletes a list and all its elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := collections.GetList[string](db, args[0])
			if err != nil {
				return err
			}
			if err := collections.Remove(cmd.Context(), l); err != nil {
				return err
			} else {
				fmt.Println("drop successfully")
			}
			return nil
		},
	}
)
