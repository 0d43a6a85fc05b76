package main

import (
	"github.com/spf13/cobra"

	"l1gct/jetcand"
)

func (a *app) encodeCmd() *cobra.Command {
	var (
		rank, eta, phi uint32
		tau, forward   bool
		block, index   uint16
		bx             int16
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Pack rank/eta/phi into a jet word",
		Long: `Pack decoded fields into a 16-bit jet word. Eta carries its sign in bit 3
(8 = -0, 11 = -3, 3 = +3). Oversized values are truncated to their field width,
exactly as the hardware packer does.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := jetcand.NewWithSource(rank, phi, eta, tau, forward, block, index, bx)
			return a.emit(cmd.OutOrStdout(), []jetcand.Candidate{c})
		},
	}

	cmd.Flags().Uint32Var(&rank, "rank", 0, "rank (6 bits)")
	cmd.Flags().Uint32Var(&eta, "eta", 0, "eta index, sign in bit 3 (4 bits)")
	cmd.Flags().Uint32Var(&phi, "phi", 0, "phi index (5 bits)")
	cmd.Flags().BoolVar(&tau, "tau", false, "tau jet")
	cmd.Flags().BoolVar(&forward, "forward", false, "forward jet")
	cmd.Flags().Uint16Var(&block, "block", 0, "capture block id")
	cmd.Flags().Uint16Var(&index, "index", 0, "capture index")
	cmd.Flags().Int16Var(&bx, "bx", 0, "relative bunch crossing")
	return cmd
}
