// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostic logging for gctdump
//
// Purpose:
//   - Reports command failures and configuration notes on stderr.
//   - Keeps the decode/encode paths free of logging entirely.
//
// Notes:
//   - Lines are built by concatenation and handed to utils.PrintWarning.
//   - Every line ends with '\n'; prefixes are upper-case tags (e.g. "DECODE").
//
// ⚠️ Never invoke per candidate; use only for failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "l1gct/utils"

// DropError logs "<prefix>: <err>" or, for a nil error, just the prefix.
//
//go:nosplit
//go:inline
//go:registerparams
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
		return
	}
	utils.PrintWarning(prefix + "\n")
}

// DropMessage logs "<prefix>: <message>".
//
//go:nosplit
//go:inline
//go:registerparams
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
