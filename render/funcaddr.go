package render

import (
	"fmt"
	"io"
)

// PrintFunctionPointerAddress prints a code address, with the symbol
// it resolves to when a resolver is attached and symbol printing is
// on.
func (c *Context) PrintFunctionPointerAddress(w io.Writer, addr uint64) error {
	if _, err := fmt.Fprintf(w, "0x%x", addr); err != nil {
		return err
	}
	if !c.Opts.PrintSymbol || c.Syms == nil {
		return nil
	}
	return c.printSymbol(w, addr)
}
