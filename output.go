package main

import (
	"errors"
	"fmt"
	"io"

	"l1gct/debug"
	"l1gct/jetcand"
	"l1gct/unpack"
	"l1gct/utils"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	errBadWord    = errors.New("malformed hex word")
	errBadPayload = errors.New("malformed hex payload")
	errBadFormat  = errors.New("unknown output format")
)

// emit writes one line per candidate: "0xWORD <text>" or a JSON object.
func (a *app) emit(w io.Writer, cands []jetcand.Candidate) error {
	format := a.format()
	if format != formatText && format != formatJSON {
		return fmt.Errorf("%q: %w", format, errBadFormat)
	}

	line := make([]byte, 0, 128)
	for _, c := range cands {
		line = line[:0]
		if format == formatJSON {
			js, err := c.MarshalJSON()
			if err != nil {
				return fmt.Errorf("encode candidate: %w", err)
			}
			line = append(line, js...)
		} else {
			line = utils.AppendHex(line, uint64(c.Raw()), 4)
			line = append(line, ' ')
			line = c.AppendText(line)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// warnIndexWrap notes on stderr when n slots exceed what the 8-bit capture
// index can tell apart. Output still lists every slot.
func warnIndexWrap(prefix string, n int) {
	if n <= unpack.MaxSlots {
		return
	}
	debug.DropMessage(prefix, utils.Itoa(n)+" slots; capture index repeats every "+utils.Itoa(unpack.MaxSlots))
}
