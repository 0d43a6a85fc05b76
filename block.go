package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"l1gct/unpack"
	"l1gct/utils"
)

func (a *app) blockCmd() *cobra.Command {
	var (
		h         unpack.Header
		skipEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "block <hex-bytes>",
		Short: "Unpack a capture block payload of little-endian jet words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, ok := utils.ParseHexBytes(nil, []byte(args[0]))
			if !ok {
				return fmt.Errorf("%q: %w", args[0], errBadPayload)
			}
			warnIndexWrap("BLOCK", unpack.Words(payload))
			cands := unpack.Jets(payload, h)
			if skipEmpty {
				cands = unpack.NonEmpty(cands)
			}
			return a.emit(cmd.OutOrStdout(), cands)
		},
	}

	cmd.Flags().Uint16Var(&h.Block, "block", 0, "capture block id (low 8 bits kept)")
	cmd.Flags().Int16Var(&h.Bx, "bx", 0, "relative bunch crossing")
	cmd.Flags().BoolVar(&h.Tau, "tau", false, "block carries tau jets")
	cmd.Flags().BoolVar(&h.Forward, "forward", false, "block carries forward jets")
	cmd.Flags().BoolVar(&skipEmpty, "skip-empty", false, "drop rank-0 slots")
	return cmd
}
