// Copyright 2025 The Gradop Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gradop-ml/gradop/fn"
	"github.com/gradop-ml/gradop/optim"
	"github.com/gradop-ml/gradop/vec"
)

var (
	minObjective string
	minOptimizer string
	minSteps     int
	minLR        float64
	minMomentum  float64
	minInit      string
	minArity     int
)

var minimizeCmd = &cobra.Command{
	Use:   "minimize",
	Short: "Run gradient descent on a builtin objective",
	Long: `Minimizes a builtin objective with SGD or Adam and reports the final
point and value.

Example:
  gradop minimize --objective rosenbrock --optimizer adam --lr 0.02 --steps 5000
  gradop minimize --objective sphere --arity 8 --init 1,1,1,1,1,1,1,1`,
	RunE: runMinimize,
}

func init() {
	minimizeCmd.Flags().StringVar(&minObjective, "objective", "rosenbrock", "objective name (see gradop check for the registry)")
	minimizeCmd.Flags().StringVar(&minOptimizer, "optimizer", "adam", "optimizer: sgd or adam")
	minimizeCmd.Flags().IntVar(&minSteps, "steps", 2000, "update steps")
	minimizeCmd.Flags().Float64Var(&minLR, "lr", 0.01, "learning rate")
	minimizeCmd.Flags().Float64Var(&minMomentum, "momentum", 0, "SGD momentum")
	minimizeCmd.Flags().StringVar(&minInit, "init", "", "comma-separated start point (default: -1.2,1 style per objective)")
	minimizeCmd.Flags().IntVar(&minArity, "arity", defaultParametricArity, "arity for parametric objectives")
}

func parseInit(s string, arity int) (vec.Vec[float64], error) {
	if s == "" {
		// A mildly awkward start away from the minimum.
		return vec.Fill(arity, -1.2), nil
	}
	parts := strings.Split(s, ",")
	xs := make([]float64, len(parts))
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return vec.Vec[float64]{}, fmt.Errorf("parse --init: %w", err)
		}
		xs[i] = x
	}
	return vec.FromSlice(xs), nil
}

func runMinimize(cmd *cobra.Command, args []string) error {
	objective, err := fn.Lookup(minObjective, minArity)
	if err != nil {
		return err
	}
	if objective.Arity() == 0 {
		return fmt.Errorf("objective %q takes no inputs", minObjective)
	}

	init, err := parseInit(minInit, objective.Arity())
	if err != nil {
		return err
	}
	if init.Len() != objective.Arity() {
		return fmt.Errorf("objective %q expects %d inputs, --init has %d", minObjective, objective.Arity(), init.Len())
	}

	var opt optim.Optimizer[float64]
	switch minOptimizer {
	case "sgd":
		opt = optim.NewSGD(optim.SGDConfig[float64]{LR: minLR, Momentum: minMomentum})
	case "adam":
		opt = optim.NewAdam(optim.AdamConfig[float64]{LR: minLR})
	default:
		return fmt.Errorf("unknown optimizer %q (want sgd or adam)", minOptimizer)
	}

	logger.Info("minimizing",
		zap.String("objective", minObjective),
		zap.String("optimizer", minOptimizer),
		zap.Float64("lr", minLR),
		zap.Int("steps", minSteps),
		zap.String("init", init.String()))

	result := optim.Minimize(objective, init, opt, minSteps)

	logger.Info("done",
		zap.String("params", result.Params.String()),
		zap.Float64("value", result.Value),
		zap.Int("steps", result.Steps))
	fmt.Printf("%s -> %g after %d steps at %s\n", minObjective, result.Value, result.Steps, result.Params)
	return nil
}
