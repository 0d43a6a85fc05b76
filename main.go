// ════════════════════════════════════════════════════════════════════════════════════════════════
// gctdump - GCT Jet Word Diagnostic Tool
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: L1 Global Calorimeter Trigger jet records
// Component: Command-line entry point
//
// Description:
//   Decodes raw 16-bit jet words and capture blocks into readable candidates, and encodes
//   rank/eta/phi back into bus words for emulator cross-checks.
//
// Commands:
//   - decode: raw words (args or stdin) → candidates
//   - encode: rank/eta/phi flags → raw word + candidate
//   - block:  capture block payload (hex bytes) → candidates with slot provenance
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"

	"l1gct/debug"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		debug.DropError("GCTDUMP", err)
		os.Exit(1)
	}
}
