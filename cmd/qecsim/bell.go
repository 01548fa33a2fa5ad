package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qecsim/chp"
	"github.com/katalvlaran/qecsim/register"
	"github.com/katalvlaran/qecsim/rng"
)

func newBellCmd(a *app) *cobra.Command {
	var (
		shots int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "bell",
		Short: "Sample a Bell pair to check the stabilizer simulator",
		Long: `Prepares (|00⟩+|11⟩)/√2 with H and CNOT, measures both qubits and prints the
outcome counts. Mismatched outcomes are an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shots < 1 {
				return fmt.Errorf("bell: shots %d must be >= 1", shots)
			}
			var counts [2][2]int
			for i := 0; i < shots; i++ {
				a0, a1, err := bellShot(rng.Derive(seed, uint64(i)))
				if err != nil {
					return err
				}
				counts[a0][a1]++
			}
			a.logger.Debug("bell sampling done", zap.Int("shots", shots), zap.Uint64("seed", seed))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "00: %d\n11: %d\n", counts[0][0], counts[1][1])
			if bad := counts[0][1] + counts[1][0]; bad > 0 {
				return fmt.Errorf("bell: %d of %d shots disagreed", bad, shots)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&shots, "shots", 1000, "number of samples")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "sampling seed")

	return cmd
}

func bellShot(seed uint64) (uint8, uint8, error) {
	t, err := chp.New(2, seed)
	if err != nil {
		return 0, 0, err
	}
	regs := register.NewFile(2)
	r0, r1 := regs.Alloc(), regs.Alloc()

	d := chp.NewDispatcher(4)
	d.Push(chp.H(0))
	d.Push(chp.CX(0, 1))
	d.Push(chp.Measure(0, r0))
	d.Push(chp.Measure(1, r1))
	if err := d.Run(t, regs); err != nil {
		return 0, 0, err
	}
	a0, _ := regs.Get(r0)
	a1, _ := regs.Get(r1)

	return a0, a1, nil
}
