package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/debug-renderer/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLines = 20

type inspectModel struct {
	rctx    *render.Context
	input   textinput.Model
	history []string
}

func newInspectModel(rctx *render.Context) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "print <addr> <type>"
	ti.Prompt = "(inspect) "
	ti.PromptStyle = promptStyle
	ti.Focus()
	return &inspectModel{rctx: rctx, input: ti}
}

func runInteractive(rctx *render.Context) error {
	_, err := tea.NewProgram(newInspectModel(rctx)).Run()
	return err
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			m.push(promptStyle.Render("(inspect) ") + line)
			out, err := m.runCommand(line)
			if err != nil {
				m.push(errorStyle.Render(err.Error()))
			} else if out != "" {
				m.push(resultStyle.Render(out))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectModel) push(line string) {
	m.history = append(m.history, line)
	if len(m.history) > historyLines {
		m.history = m.history[len(m.history)-historyLines:]
	}
}

func (m *inspectModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("debug value inspector"))
	b.WriteString("\n\n")
	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("print <addr> <type> | set print elements N | set radix N | quit"))
	return b.String()
}

func (m *inspectModel) runCommand(line string) (string, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "print", "p":
		if len(fields) != 3 {
			return "", fmt.Errorf("usage: print <addr> <type>")
		}
		return printCommand(m.rctx, fields[1], fields[2])
	case "set":
		return "", m.setCommand(fields[1:])
	case "show":
		return m.showCommand(fields[1:])
	case "help":
		return "commands: print <addr> <type>, set print <option> <value>, set radix N, show radix, quit", nil
	default:
		return "", fmt.Errorf("unknown command %q", fields[0])
	}
}

func (m *inspectModel) setCommand(args []string) error {
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad value %q", args[1])
		}
		switch args[0] {
		case "radix":
			return m.rctx.SetRadix(n)
		case "input-radix":
			return m.rctx.SetInputRadix(n)
		case "output-radix":
			return m.rctx.SetOutputRadix(n)
		}
		return fmt.Errorf("unknown setting %q", args[0])
	}
	if len(args) != 3 || args[0] != "print" {
		return fmt.Errorf("usage: set print <option> <value> | set radix <n>")
	}
	opt, val := args[1], args[2]
	o := &m.rctx.Opts
	switch opt {
	case "elements":
		return setUint(&o.MaxElements, val)
	case "repeats":
		return setUint(&o.RepeatThreshold, val)
	case "max-depth":
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("bad value %q", val)
		}
		o.MaxDepth = n
		return nil
	case "pretty":
		return setBool(&o.PrettyStructs, val)
	case "array":
		return setBool(&o.PrettyArrays, val)
	case "array-indexes":
		return setBool(&o.PrintIndexes, val)
	case "null-stop":
		return setBool(&o.StopAtNull, val)
	case "address":
		return setBool(&o.Addresses, val)
	case "union":
		return setBool(&o.Unions, val)
	case "static-members":
		return setBool(&o.Static, val)
	case "pascal-static-members":
		return setBool(&o.PascalStatic, val)
	case "finish":
		return setBool(&o.Finish, val)
	case "symbol":
		return setBool(&o.PrintSymbol, val)
	case "raw":
		return setBool(&o.Raw, val)
	case "vtbl":
		return setBool(&o.Vtable, val)
	case "object":
		return setBool(&o.Object, val)
	default:
		return fmt.Errorf("unknown print option %q", opt)
	}
}

func (m *inspectModel) showCommand(args []string) (string, error) {
	if len(args) == 1 && args[0] == "radix" {
		return fmt.Sprintf("input radix %d, output radix %d",
			m.rctx.InputRadix(), m.rctx.OutputRadix()), nil
	}
	if len(args) == 2 && args[0] == "print" {
		o := m.rctx.Opts
		switch args[1] {
		case "elements":
			return fmt.Sprintf("elements %d", o.MaxElements), nil
		case "repeats":
			return fmt.Sprintf("repeats %d", o.RepeatThreshold), nil
		case "max-depth":
			return fmt.Sprintf("max-depth %d", o.MaxDepth), nil
		}
	}
	return "", fmt.Errorf("usage: show radix | show print <option>")
}

func setUint(dst *uint, val string) error {
	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return fmt.Errorf("bad value %q", val)
	}
	*dst = uint(n)
	return nil
}

func setBool(dst *bool, val string) error {
	switch val {
	case "on", "true", "1":
		*dst = true
	case "off", "false", "0":
		*dst = false
	default:
		return fmt.Errorf("bad value %q, want on or off", val)
	}
	return nil
}
