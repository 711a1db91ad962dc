package list

import (
	"fmt"
	"strings"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/syntacticsugarglider/redis-backed/cmd/util"
	"github.com/syntacticsugarglider/redis-backed/lib/collections"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for redis-backed lists",
		Long:    "",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfListName  = "__test-perf"
	perfOps       = 1000
	perfValueSize = 64
	perfSkip      = make([]string, 0)
)

func init() {
	// add flags
	key := "ops"
	perfTestCmd.Flags().Int(key, 1000, util.WrapString("Number of operations per benchmark"))
	key = "value-size"
	perfTestCmd.Flags().Int(key, 64, util.WrapString("Size of the pushed values (in bytes)"))
	key = "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. push,pop)"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfOps = viper.GetInt("ops")
	perfValueSize = viper.GetInt("value-size")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func runPerf(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	fmt.Println("Performance testing tool for redis-backed lists")

	// Print configuration
	cfg, err := util.GetClientConfig()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(cfg.String())
	fmt.Printf("Operations: %d\n", perfOps)
	fmt.Printf("Value Size: %d bytes\n", perfValueSize)
	fmt.Println()

	l, err := collections.GetList[string](db, perfListName)
	if err != nil {
		return err
	}

	// cleanup before and after
	if err := collections.Remove(ctx, l); err != nil {
		return err
	}
	defer func() {
		_ = collections.Remove(ctx, l)
	}()

	value := strings.Repeat("x", perfValueSize)
	registry := gometrics.NewRegistry()

	fmt.Println("starting tests...")

	pushTimer := gometrics.NewRegisteredTimer("push", registry)
	if !shouldSkip("push") {
		for i := 0; i < perfOps; i++ {
			pushTimer.Time(func() {
				if err := l.PushBack(ctx, value); err != nil {
					fmt.Printf("(push) - error pushing value: %v\n", err)
				}
			})
		}
	}
	printTimer("push", pushTimer)

	rangeTimer := gometrics.NewRegisteredTimer("range", registry)
	if !shouldSkip("range") {
		for i := 0; i < perfOps; i++ {
			rangeTimer.Time(func() {
				if _, err := l.Range(ctx, 0, 99); err != nil {
					fmt.Printf("(range) - error reading range: %v\n", err)
				}
			})
		}
	}
	printTimer("range", rangeTimer)

	lenTimer := gometrics.NewRegisteredTimer("len", registry)
	if !shouldSkip("len") {
		for i := 0; i < perfOps; i++ {
			lenTimer.Time(func() {
				if _, err := l.Len(ctx); err != nil {
					fmt.Printf("(len) - error reading length: %v\n", err)
				}
			})
		}
	}
	printTimer("len", lenTimer)

	popTimer := gometrics.NewRegisteredTimer("pop", registry)
	if !shouldSkip("pop") {
		for i := 0; i < perfOps; i++ {
			popTimer.Time(func() {
				if _, _, err := l.PopFront(ctx); err != nil {
					fmt.Printf("(pop) - error popping value: %v\n", err)
				}
			})
		}
	}
	printTimer("pop", popTimer)

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// printTimer prints the result of a benchmark timer in a formatted way
func printTimer(test string, timer gometrics.Timer) {
	if timer.Count() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	ps := timer.Percentiles([]float64{0.5, 0.95, 0.99})
	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\tp50=%s p95=%s p99=%s\n",
		test,
		timer.Mean(),
		time.Duration(timer.Mean()),
		timer.RateMean(),
		time.Duration(ps[0]),
		time.Duration(ps[1]),
		time.Duration(ps[2]),
	)
}
