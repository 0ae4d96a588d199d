package render

import (
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if !o.Unions || !o.Addresses || !o.Static || !o.PascalStatic ||
		!o.PrintSymbol || !o.Finish {
		t.Error("boolean defaults wrong")
	}
	if o.PrettyArrays || o.PrettyStructs || o.Vtable || o.Object ||
		o.StopAtNull || o.PrintIndexes || o.DerefRef || o.Raw || o.Summary {
		t.Error("options default on that should be off")
	}
	if o.MaxElements != 200 {
		t.Errorf("MaxElements = %d, want 200", o.MaxElements)
	}
	if o.RepeatThreshold != 10 {
		t.Errorf("RepeatThreshold = %d, want 10", o.RepeatThreshold)
	}
	if o.MaxDepth != 20 {
		t.Errorf("MaxDepth = %d, want 20", o.MaxDepth)
	}
	if o.Format != 0 || o.OutputFormat != 0 {
		t.Error("format letters must default to none")
	}
}

func TestRadixValidation(t *testing.T) {
	c := newCtx()
	if c.InputRadix() != 10 || c.OutputRadix() != 10 {
		t.Fatalf("initial radixes = %d/%d, want 10/10", c.InputRadix(), c.OutputRadix())
	}

	if err := c.SetInputRadix(1); err == nil {
		t.Error("input radix 1 accepted")
	}
	if c.InputRadix() != 10 {
		t.Errorf("failed set changed input radix to %d", c.InputRadix())
	}
	if err := c.SetInputRadix(2); err != nil {
		t.Errorf("input radix 2 rejected: %v", err)
	}

	for _, r := range []int{0, 2, 7, 12, 60} {
		if err := c.SetOutputRadix(r); err == nil {
			t.Errorf("output radix %d accepted", r)
		}
	}
	if c.OutputRadix() != 10 {
		t.Errorf("failed sets changed output radix to %d", c.OutputRadix())
	}

	if err := c.SetOutputRadix(16); err != nil {
		t.Fatal(err)
	}
	if c.Opts.OutputFormat != 'x' {
		t.Errorf("radix 16 format letter = %q, want x", c.Opts.OutputFormat)
	}
	if err := c.SetOutputRadix(8); err != nil {
		t.Fatal(err)
	}
	if c.Opts.OutputFormat != 'o' {
		t.Errorf("radix 8 format letter = %q, want o", c.Opts.OutputFormat)
	}
	if err := c.SetOutputRadix(10); err != nil {
		t.Fatal(err)
	}
	if c.Opts.OutputFormat != 0 {
		t.Errorf("radix 10 format letter = %q, want none", c.Opts.OutputFormat)
	}
}

func TestSetRadixBoth(t *testing.T) {
	c := newCtx()
	if err := c.SetRadix(16); err != nil {
		t.Fatal(err)
	}
	if c.InputRadix() != 16 || c.OutputRadix() != 16 {
		t.Errorf("radixes = %d/%d, want 16/16", c.InputRadix(), c.OutputRadix())
	}
	if err := c.SetRadix(3); err == nil {
		t.Error("set radix 3 accepted")
	}
	if c.InputRadix() != 16 || c.OutputRadix() != 16 {
		t.Error("failed set radix changed values")
	}
}

func TestParseInput(t *testing.T) {
	c := newCtx()
	if v, err := c.ParseInput("42"); err != nil || v != 42 {
		t.Errorf("decimal parse = %d, %v", v, err)
	}
	if err := c.SetInputRadix(16); err != nil {
		t.Fatal(err)
	}
	if v, err := c.ParseInput("ff"); err != nil || v != 255 {
		t.Errorf("hex parse = %d, %v", v, err)
	}
	if _, err := c.ParseInput("zz"); err == nil {
		t.Error("invalid literal accepted")
	}
}
