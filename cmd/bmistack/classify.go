package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/bmistack/bmistack/internal/bmi"
)

// classification is the JSON shape printed by classify.
type classification struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Risk     string  `json:"risk"`
}

func newClassifyCmd() *cobra.Command {
	var (
		height, weight float64
		meters         bool
	)
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the BMI, category and risk for one height and weight",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := bmi.Classify(height, weight, !meters)
			if err != nil {
				return err
			}
			if math.IsInf(r.Value, 0) || math.IsNaN(r.Value) {
				return fmt.Errorf("classify: bmi for height %v and weight %v is not finite", height, weight)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(classification{BMI: r.Value, Category: r.Category, Risk: r.Risk}); err != nil {
				return fmt.Errorf("classify: encode: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&height, "height", 0, "height, in centimeters unless --meters")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kilograms")
	cmd.Flags().BoolVar(&meters, "meters", false, "height is in meters")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}
