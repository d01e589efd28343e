// Command inspect is an interactive single-stepping TUI over the emulator
// facade, in the spirit of this corpus's original bubbletea debugger: a
// page table of memory, the live register file, and a dump of the opcode
// about to execute, advanced one instruction at a time.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/urfave/cli.v2"

	"gone6502/cpu"
	"gone6502/emulator"
)

type model struct {
	e      *emulator.Emulator
	prevPC uint16
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.e.GetRegisters().PC
			m.e.StepInstruction()
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte page as a line, highlighting PC.
func (m model) renderPage(start uint16) string {
	pc := m.e.GetRegisters().PC
	row := m.e.GetRAM(start, 16)
	s := fmt.Sprintf("%04x | ", start)
	for i, b := range row {
		if start+uint16(i) == pc {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	regs := m.e.GetRegisters()
	p := cpu.Flags(regs.P)
	var flags string
	for _, set := range []bool{
		p.Negative(), p.Overflow(), p.Unused(), p.Break(),
		p.Decimal(), p.Interrupt(), p.Zero(), p.Carry(),
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		regs.PC, m.prevPC, regs.A, regs.X, regs.Y, regs.SP,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	pages := []string{header}

	pc := m.e.GetRegisters().PC
	base := pc - pc%16
	offsets := []uint16{0, 16, 32, 48, 64, base}
	for i := uint16(1); i <= 4; i++ {
		offsets = append(offsets, base+16*i)
	}
	for _, start := range offsets {
		pages = append(pages, m.renderPage(start))
	}
	return strings.Join(pages, "\n")
}

func (m model) View() string {
	regs := m.e.GetRegisters()
	opcode := m.e.GetRAM(regs.PC, 1)
	var op cpu.Opcode
	if len(opcode) == 1 {
		op = cpu.Opcodes[opcode[0]]
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.pageTable(), m.status()),
		"",
		spew.Sdump(op),
		"\nspace/j: step one instruction   q: quit",
	)
}

func main() {
	app := &cli.App{
		Name:    "inspect",
		Usage:   "single-step a 6502 program and watch registers/memory live",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "offset",
				Aliases: []string{"o"},
				Usage:   "address to load the program at and point the reset vector to",
				Value:   0x8000,
			},
		},
		Action: func(c *cli.Context) error {
			offset := uint16(c.Uint("offset"))

			var program []byte
			if c.NArg() > 0 {
				data, err := os.ReadFile(c.Args().First())
				if err != nil {
					return err
				}
				program = data
			} else {
				// A tiny default program, useful for poking around with no args.
				program = []byte{0xA9, 0x01, 0x8D, 0x00, 0x02, 0x4C, 0x00, 0x80}
			}

			e := emulator.New()
			if err := e.LoadProgram(program, offset); err != nil {
				return err
			}

			_, err := tea.NewProgram(model{e: e, prevPC: e.GetRegisters().PC}).Run()
			return err
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "inspect:", err)
		os.Exit(1)
	}
}
