// Command ddbb-solve loads a YAML knapsack instance and solves it to
// optimality with the parallel branch-and-bound engine, printing the
// best value and the chosen items.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corvidlabs/ddbb/bnb"
	"github.com/corvidlabs/ddbb/contracts"
	"github.com/corvidlabs/ddbb/frontier"
	"github.com/corvidlabs/ddbb/knapsack"
)

type options struct {
	instancePath string
	width        int
	nbThreads    int
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ddbb-solve",
		Short: "Solve a 0/1 knapsack instance with parallel B&B-MDD search",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.instancePath, "instance", "", "path to a YAML knapsack instance (required)")
	flags.IntVar(&opts.width, "width", 2, "fixed maximum MDD layer width")
	flags.IntVar(&opts.nbThreads, "threads", 1, "number of worker goroutines")
	flags.BoolVar(&opts.verbose, "verbose", false, "log every improved lower bound")
	cmd.MarkFlagRequired("instance")

	return cmd
}

func run(opts *options) error {
	logger := logrus.StandardLogger()
	if opts.verbose {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	inst, err := knapsack.LoadInstance(opts.instancePath)
	if err != nil {
		return err
	}

	problem := knapsack.NewProblem(inst)
	relax := knapsack.NewRelaxation(inst)
	ranking := knapsack.Ranking{}

	var p contracts.Problem[int] = problem
	var r contracts.Relaxation[int] = relax

	engine, err := bnb.NewEngine(bnb.Config[int]{
		NbThreads:      opts.nbThreads,
		Problem:        p,
		Relaxation:     r,
		VarHeuristic:   knapsack.AscendingVariableHeuristic{},
		Ranking:        ranking,
		WidthHeuristic: contracts.FixedWidth[int](opts.width),
		Frontier:       frontier.NewSimpleFrontier[int](ranking),
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	engine.Maximize()

	v, ok := engine.BestValue()
	if !ok {
		fmt.Println("infeasible: no solution found")

		return nil
	}

	sol, _ := engine.BestSolution()
	chosen := make([]int, 0, len(sol))
	for variable, x := range sol {
		if x == 1 {
			chosen = append(chosen, variable)
		}
	}
	sort.Ints(chosen)

	fmt.Printf("best value: %d\n", v)
	fmt.Printf("chosen items: %v\n", chosen)
	fmt.Printf("explored: %d\n", engine.Explored())

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
