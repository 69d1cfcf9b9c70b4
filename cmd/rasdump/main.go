package main

import (
	goelf "debug/elf"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grimdork/climate/arg"
	"github.com/ktact/ras/disassembler"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses args, the command line without the program name, dumps the
// named object to stdout and returns the exit status.
func run(args []string, stdout *os.File) int {
	opt := arg.New("rasdump")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "n", "no-color", "Never highlight headings.", false, false, arg.VarBool, nil)
	opt.SetPositional("OBJECT", "Relocatable object to inspect.", "", true, arg.VarString)

	err := opt.Parse(args)
	if err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	name := opt.GetPosString("OBJECT")
	f, err := goelf.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", name, err)
		return 1
	}
	defer f.Close()

	color := !opt.GetBool("no-color") && term.IsTerminal(int(stdout.Fd()))
	if err := dump(stdout, f, color); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func heading(w io.Writer, color bool, title string) {
	if color {
		fmt.Fprintf(w, "\n\x1b[1m%s\x1b[0m\n", title)
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
}

// dump prints the header, section table, symbols and a disassembly of .text.
func dump(w io.Writer, f *goelf.File, color bool) error {
	heading(w, color, "ELF Header:")
	fmt.Fprintf(w, "  Class:    %v\n", f.Class)
	fmt.Fprintf(w, "  Data:     %v\n", f.Data)
	fmt.Fprintf(w, "  Type:     %v\n", f.Type)
	fmt.Fprintf(w, "  Machine:  %v\n", f.Machine)

	heading(w, color, "Sections:")
	fmt.Fprintf(w, "  %-3s %-10s %-14s %-8s %-8s %s\n", "Nr", "Name", "Type", "Offset", "Size", "Flags")
	for i, s := range f.Sections {
		fmt.Fprintf(w, "  %-3d %-10s %-14s %08x %08x %s\n", i, s.Name, s.Type, s.Offset, s.Size, flagString(s.Flags))
	}

	heading(w, color, "Symbols:")
	syms, err := f.Symbols()
	if err != nil && !errors.Is(err, goelf.ErrNoSymbols) {
		return err
	}
	if len(syms) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, s := range syms {
		fmt.Fprintf(w, "  %016x %-6s %-7s %3d %s\n", s.Value, bindName(goelf.ST_BIND(s.Info)), typeName(goelf.ST_TYPE(s.Info)), s.Section, s.Name)
	}

	text := f.Section(".text")
	if text == nil {
		return nil
	}
	code, err := text.Data()
	if err != nil {
		return fmt.Errorf("read .text: %w", err)
	}
	heading(w, color, "Disassembly of .text:")
	listing, err := disassembler.Disassemble(code)
	if err != nil {
		return err
	}
	fmt.Fprint(w, listing)
	return nil
}

func flagString(flags goelf.SectionFlag) string {
	var b strings.Builder
	if flags&goelf.SHF_WRITE != 0 {
		b.WriteByte('W')
	}
	if flags&goelf.SHF_ALLOC != 0 {
		b.WriteByte('A')
	}
	if flags&goelf.SHF_EXECINSTR != 0 {
		b.WriteByte('X')
	}
	return b.String()
}

func bindName(b goelf.SymBind) string {
	return strings.ToLower(strings.TrimPrefix(b.String(), "STB_"))
}

func typeName(t goelf.SymType) string {
	return strings.ToLower(strings.TrimPrefix(t.String(), "STT_"))
}
