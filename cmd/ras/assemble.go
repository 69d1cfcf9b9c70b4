package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ktact/ras/assembler"
	"github.com/ktact/ras/elf"
)

// assembleSource runs the whole pipeline on one source text and returns the
// finished object image.
func assembleSource(src string) ([]byte, *elf.Layout, error) {
	prog, err := assembler.New().Assemble(src)
	if err != nil {
		return nil, nil, err
	}
	return elf.Build(objectFor(prog))
}

// objectFor maps assembler symbols onto ELF symbol definitions. Every symbol
// lives in .text, including globals that were declared but never defined.
func objectFor(prog *assembler.Program) *elf.Object {
	obj := &elf.Object{Text: prog.Code}
	for _, s := range prog.Symbols {
		bind := elf.BindLocal
		if s.Global {
			bind = elf.BindGlobal
		}
		obj.Symbols = append(obj.Symbols, elf.SymbolDef{
			Name:       s.Name,
			Type:       elf.SymNoType,
			Bind:       bind,
			Visibility: elf.VisDefault,
			Section:    elf.IndexText,
			Value:      s.Value,
		})
	}
	return obj
}

func readSource(cfg Config, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if cfg.readsStdin() {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(cfg.Input)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", cfg.inputName(), err)
	}
	return string(data), nil
}

// assembleFile is one complete run: read, assemble, lay out, write. Nothing is
// written unless every stage succeeds.
func assembleFile(cfg Config, stdin io.Reader, log *Logger) error {
	src, err := readSource(cfg, stdin)
	if err != nil {
		return err
	}
	log.Debug("read %d bytes from %s", len(src), cfg.inputName())

	image, layout, err := assembleSource(src)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.inputName(), err)
	}
	logLayout(log, layout)

	if err := writeObject(cfg.Output, image); err != nil {
		return err
	}
	log.Info("wrote %s (%d bytes)", cfg.Output, len(image))
	return nil
}

func logLayout(log *Logger, layout *elf.Layout) {
	if !log.Verbose {
		return
	}
	for _, p := range layout.Sections {
		if p.Index == elf.IndexNull {
			continue
		}
		log.Info("%-10s %-8s offset %#06x size %#x", p.Name, p.Type, p.Offset, p.Size)
	}
	log.Info("section headers at %#x, %d symbols", layout.SectionTableOffset, layout.Symbols)
}
