package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"l1gct/jetcand"
	"l1gct/utils"
)

func (a *app) decodeCmd() *cobra.Command {
	var (
		tau, forward bool
		block        uint16
		bx           int16
	)

	cmd := &cobra.Command{
		Use:   "decode [word...]",
		Short: "Decode raw 16-bit jet words (hex, 0x optional)",
		Long: `Decode raw jet words into candidates. Words are taken from the arguments
or, when none are given, whitespace-separated from stdin. The position of each
word becomes its capture index.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := args
			if len(words) == 0 {
				var err error
				if words, err = readWords(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			warnIndexWrap("DECODE", len(words))
			cands := make([]jetcand.Candidate, 0, len(words))
			for i, w := range words {
				word, ok := utils.ParseHexU16([]byte(w))
				if !ok {
					return fmt.Errorf("word %d %q: %w", i, w, errBadWord)
				}
				cands = append(cands, jetcand.FromRawSource(word, tau, forward, block, uint16(i), bx))
			}
			return a.emit(cmd.OutOrStdout(), cands)
		},
	}

	cmd.Flags().BoolVar(&tau, "tau", false, "words are tau jets")
	cmd.Flags().BoolVar(&forward, "forward", false, "words are forward jets")
	cmd.Flags().Uint16Var(&block, "block", 0, "capture block id (low 8 bits kept)")
	cmd.Flags().Int16Var(&bx, "bx", 0, "relative bunch crossing")
	return cmd
}

// readWords splits r on whitespace.
func readWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return words, nil
}
