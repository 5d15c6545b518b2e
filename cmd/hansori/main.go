package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eiannone/keyboard"

	"hansori/internal/config"
	"hansori/internal/emitter"
	"hansori/internal/engine"
	"hansori/internal/layout"
	"hansori/internal/types"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hansori: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	layoutName := flag.String("layout", "", fmt.Sprintf("keyboard layout (%s)", strings.Join(layout.AvailableLayouts(), ", ")))
	configPath := flag.String("config", "", "path to hansori.ini")
	batch := flag.Bool("batch", false, "translate romanized lines from stdin instead of running interactively")
	listLayouts := flag.Bool("list-layouts", false, "print available layouts and exit")
	flag.Parse()

	if *listLayouts {
		for _, name := range layout.AvailableLayouts() {
			fmt.Println(name)
		}
		return nil
	}

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}
	if *layoutName != "" {
		cfg.Layout = *layoutName
	}

	lay, err := layout.Load(cfg.Layout)
	if err != nil {
		return err
	}

	mode := types.ModeHangul
	if strings.EqualFold(cfg.DefaultMode, "latin") {
		mode = types.ModeLatin
	}
	opts := engine.Options{Mode: mode, CompoundDouble: cfg.CompoundDouble}

	if *batch {
		return runBatch(lay, cfg, opts)
	}
	return runInteractive(lay, cfg, opts)
}

func runBatch(lay *layout.Layout, cfg config.Config, opts engine.Options) error {
	out, err := emitter.NewWriter(os.Stdout, emitter.WriterOptions{
		Encoding:  cfg.Encoding,
		Normalize: cfg.Normalize,
	})
	if err != nil {
		return err
	}
	defer out.Close()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		eng := engine.New(lay, out, opts)
		for _, r := range scanner.Text() {
			if err := eng.HandleKey(r); err != nil {
				return err
			}
		}
		if err := eng.Flush(); err != nil {
			return err
		}
		if err := out.SendText("\n"); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func runInteractive(lay *layout.Layout, cfg config.Config, opts engine.Options) error {
	toggle, err := toggleKey(cfg.ToggleKey)
	if err != nil {
		return err
	}

	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	out := emitter.NewCollector()
	eng := engine.New(lay, out, opts)

	fmt.Printf("hansori (%s), Esc quits, %s toggles mode\n", lay.Name(), cfg.ToggleKey)
	redraw(out, eng)

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		switch {
		case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC:
			if err := eng.Flush(); err != nil {
				return err
			}
			redraw(out, eng)
			fmt.Println()
			return nil
		case key == toggle:
			if err := eng.ToggleMode(); err != nil {
				return err
			}
		case key == keyboard.KeyBackspace || key == keyboard.KeyBackspace2:
			handled, err := eng.Backspace()
			if err != nil {
				return err
			}
			if !handled {
				if err := out.SendBackspace(1); err != nil {
					return err
				}
			}
		case key == keyboard.KeyEnter:
			if err := eng.Flush(); err != nil {
				return err
			}
			fmt.Printf("\r\x1b[K%s\n", out.String())
			out.Reset()
		case key == keyboard.KeySpace:
			if err := eng.HandleKey(' '); err != nil {
				return err
			}
		case char != 0:
			if err := eng.HandleKey(char); err != nil {
				return err
			}
		}
		redraw(out, eng)
	}
}

func redraw(out *emitter.Collector, eng *engine.Engine) {
	fmt.Printf("\r\x1b[K[%s] %s", eng.Mode(), out.String())
}

func toggleKey(name string) (keyboard.Key, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ctrl+space":
		return keyboard.KeyCtrlSpace, nil
	case "tab":
		return keyboard.KeyTab, nil
	case "ctrl+g":
		return keyboard.KeyCtrlG, nil
	default:
		return 0, fmt.Errorf("unsupported toggle key %q", name)
	}
}
