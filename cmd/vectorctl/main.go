package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/script"
)

var (
	verbose  bool
	failFast bool
)

var rootCmd = &cobra.Command{
	Use:   "vectorctl",
	Short: "Exercise the vector container from the command line",
	Long:  `A command-line driver that demonstrates the vector container and replays YAML operation scripts against it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the built-in usage scenarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runDemo()
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>...",
	Short: "Replay operation scripts and check their expectations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		failed := 0
		for _, path := range args {
			s, err := script.LoadFile(path)
			if err != nil {
				return fmt.Errorf("failed to load script: %w", err)
			}

			report, err := script.Run(ctx, s, script.Options{Logger: slog.Default(), FailFast: failFast})
			printReport(report)
			if err != nil {
				if errors.Is(err, script.ErrStepFailed) {
					return err
				}
				return fmt.Errorf("failed to run %s: %w", s.Name, err)
			}
			if !report.OK() {
				failed++
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d scripts failed", failed, len(args))
		}
		return nil
	},
}

func printReport(r *script.Report) {
	if r == nil {
		return
	}
	fmt.Printf("== %s\n", r.Script)
	for _, res := range r.Results {
		status := "ok"
		if !res.Passed() {
			status = "FAIL: " + res.Failure
		}
		outcome := ""
		if res.Err != nil {
			outcome = " (" + script.ErrorKind(res.Err) + ")"
		}
		fmt.Printf("%3d  %-10s %-20v size=%-3d cap=%-3d %s%s\n",
			res.Index, res.Step.Op, res.Elements, res.Size, res.Capacity, status, outcome)
	}
	fmt.Printf("%d steps, %d failed\n", len(r.Results), r.Failed)
}

func runDemo() {
	section := func(title string) {
		fmt.Printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	}

	section("Push, insert and erase")
	v := vector.New[int]()
	for _, x := range []int{1, 2, 3} {
		v.PushBack(x)
	}
	fmt.Printf("pushed:   %v size=%d capacity=%d\n", v, v.Len(), v.Cap())
	v.Insert(v.Begin()+1, 9)
	fmt.Printf("inserted: %v size=%d capacity=%d\n", v, v.Len(), v.Cap())
	v.Erase(v.Begin() + 1)
	fmt.Printf("erased:   %v size=%d capacity=%d\n", v, v.Len(), v.Cap())

	section("Resize")
	r := vector.New[int]()
	r.Resize(5)
	fmt.Printf("resize 5: %v capacity=%d\n", r, r.Cap())
	r.Resize(2)
	fmt.Printf("resize 2: %v capacity=%d\n", r, r.Cap())

	section("Literal and comparison")
	lit := vector.Of(10, 20, 30)
	pushed := vector.New[int]()
	for _, x := range []int{10, 20, 30} {
		pushed.PushBack(x)
	}
	fmt.Printf("%v == %v: %v\n", lit, pushed, vector.Equal(lit, pushed))
	fmt.Printf("%v < %v: %v\n", vector.Of(1, 2), vector.Of(1, 3), vector.Less(vector.Of(1, 2), vector.Of(1, 3)))

	section("Reservation")
	res := vector.NewReserved[int](vector.WithCapacity(8))
	fmt.Printf("reserved: %v size=%d capacity=%d\n", res, res.Len(), res.Cap())

	section("Copy and move")
	orig := vector.Of(1, 2, 3)
	clone := orig.Clone()
	clone.Set(0, 100)
	moved := orig.Move()
	fmt.Printf("clone=%v moved=%v source=%v\n", clone, moved, orig)

	section("Errors")
	if _, err := r.At(10); err != nil {
		fmt.Println(err)
	}
	if _, err := vector.New[int]().Erase(0); err != nil {
		fmt.Println(err)
	}

	m := v.Metrics()
	section("Metrics")
	fmt.Printf("size=%d capacity=%d allocations=%d utilization=%.1f%%\n",
		m.Size, m.Capacity, m.Allocations, m.Utilization*100)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	runCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first failed step")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
