package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/debug-renderer/bytecodec"
	"github.com/wippyai/debug-renderer/render"
	"github.com/wippyai/debug-renderer/target"
	"github.com/wippyai/debug-renderer/typeinfo"
	"github.com/wippyai/debug-renderer/value"
)

func main() {
	var (
		coreFile    = flag.String("core", "", "Path to a raw memory dump")
		wasmFile    = flag.String("wasm", "", "Path to a wasm module; inspects its linear memory")
		base        = flag.String("base", "0", "Load address of the dump")
		addrStr     = flag.String("addr", "", "Address of the value to print")
		typeExpr    = flag.String("type", "", "Type of the value (int32, *char, [12]uint16, ...)")
		orderName   = flag.String("order", "little", "Architecture byte order: little or big")
		radix       = flag.Int("radix", 10, "Input and output radix")
		elements    = flag.Uint("elements", 200, "Maximum array elements and string characters")
		repeats     = flag.Uint("repeats", 10, "Repeat compression threshold")
		depth       = flag.Int("depth", 20, "Maximum aggregate nesting depth")
		pretty      = flag.Bool("pretty", false, "Indent arrays and structs")
		indexes     = flag.Bool("indexes", false, "Print array indexes")
		nullStop    = flag.Bool("null-stop", false, "Stop arrays at the first NUL")
		raw         = flag.Bool("raw", false, "Bypass pretty-printers")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *coreFile == "" && *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -core <dump> -addr <hex> -type <expr> [options]")
		fmt.Fprintln(os.Stderr, "       inspect -wasm <file.wasm> -addr <hex> -type <expr> [options]")
		fmt.Fprintln(os.Stderr, "       inspect -core <dump> -i  (interactive mode)")
		os.Exit(1)
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}

	mem, cleanup, err := openMemory(*coreFile, *wasmFile, *base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	order := bytecodec.LittleEndian
	if strings.HasPrefix(*orderName, "big") {
		order = bytecodec.BigEndian
	}

	c := render.NewContext(render.CLike(),
		render.WithMemory(mem),
		render.WithArch(order),
		render.WithLogger(logger),
	)
	if err := c.SetRadix(*radix); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	c.Opts.MaxElements = *elements
	c.Opts.RepeatThreshold = *repeats
	c.Opts.MaxDepth = *depth
	c.Opts.PrettyArrays = *pretty
	c.Opts.PrettyStructs = *pretty
	c.Opts.PrintIndexes = *indexes
	c.Opts.StopAtNull = *nullStop
	c.Opts.Raw = *raw

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(c); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *addrStr == "" || *typeExpr == "" {
		fmt.Fprintln(os.Stderr, "Error: -addr and -type are required outside interactive mode")
		os.Exit(1)
	}
	out, err := printCommand(c, *addrStr, *typeExpr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}

// openMemory maps either a raw dump at the given base or a wasm
// module's linear memory at address 0.
func openMemory(coreFile, wasmFile, baseStr string) (target.Memory, func(), error) {
	if coreFile != "" {
		data, err := os.ReadFile(coreFile)
		if err != nil {
			return nil, nil, fmt.Errorf("read dump: %w", err)
		}
		base, err := parseAddr(baseStr)
		if err != nil {
			return nil, nil, fmt.Errorf("parse base: %w", err)
		}
		return target.NewBufferMemory(base, data), func() {}, nil
	}

	ctx := context.Background()
	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read wasm: %w", err)
	}
	rt := wazero.NewRuntime(ctx)
	mod, err := rt.Instantiate(ctx, data)
	if err != nil {
		rt.Close(ctx)
		return nil, nil, fmt.Errorf("instantiate: %w", err)
	}
	linear := mod.Memory()
	if linear == nil {
		rt.Close(ctx)
		return nil, nil, fmt.Errorf("module %s exports no memory", wasmFile)
	}
	return target.NewWasmMemory(linear), func() { rt.Close(ctx) }, nil
}

// printCommand renders one value from its address and type expression.
func printCommand(c *render.Context, addrStr, typeExpr string) (string, error) {
	addr, err := parseAddr(addrStr)
	if err != nil {
		return "", fmt.Errorf("parse address: %w", err)
	}
	typ, err := parseTypeExpr(typeExpr)
	if err != nil {
		return "", err
	}
	v := value.AtAddress(typ, addr)
	var sb strings.Builder
	if err := c.ValuePrint(context.Background(), &sb, v); err != nil {
		return sb.String(), err
	}
	return sb.String(), nil
}

func parseAddr(s string) (uint64, error) {
	s = strings.TrimPrefix(s, "0x")
	return strconv.ParseUint(s, 16, 64)
}

const pointerWidth = 8

// parseTypeExpr understands a small prefix grammar: a builtin name,
// optionally wrapped in * (pointer), & (reference) and [N] (array).
func parseTypeExpr(s string) (*typeinfo.Type, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, fmt.Errorf("empty type expression")
	case s[0] == '*':
		inner, err := parseTypeExpr(s[1:])
		if err != nil {
			return nil, err
		}
		return typeinfo.NewPointer(inner, pointerWidth), nil
	case s[0] == '&':
		inner, err := parseTypeExpr(s[1:])
		if err != nil {
			return nil, err
		}
		return typeinfo.NewReference(inner, pointerWidth), nil
	case s[0] == '[':
		end := strings.IndexByte(s, ']')
		if end < 0 {
			return nil, fmt.Errorf("missing ] in %q", s)
		}
		n, err := strconv.ParseInt(s[1:end], 10, 64)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad array bound in %q", s)
		}
		inner, err := parseTypeExpr(s[end+1:])
		if err != nil {
			return nil, err
		}
		return typeinfo.NewArray(inner, n), nil
	default:
		if t := typeinfo.Builtin(s); t != nil {
			return t, nil
		}
		return nil, fmt.Errorf("unknown type %q", s)
	}
}
