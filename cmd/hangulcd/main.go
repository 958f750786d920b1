package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/eiannone/keyboard"

	"hangulcd/internal/layout"
	"hangulcd/pkg/compose"
	"hangulcd/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hangulcd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	layoutName := flag.String("layout", "", fmt.Sprintf("keyboard layout (%s)", strings.Join(layout.AvailableLayouts(), ", ")))
	configPath := flag.String("config", "", "path to an INI configuration file")
	useKeys := flag.Bool("keys", false, "treat input characters as keyboard strokes instead of jamo")
	interactive := flag.Bool("i", false, "compose interactively from the terminal")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *layoutName == "" {
		*layoutName = cfg.Layout
	}

	lay, err := layout.Load(*layoutName)
	if err != nil {
		return err
	}
	for key, jamo := range cfg.KeyOverrides {
		lay.Override(key, jamo)
	}

	if *interactive {
		return runInteractive(lay, cfg.Preedit)
	}
	return runPipe(lay, *useKeys)
}

// runPipe composes stdin line by line. With -keys each character first goes
// through the layout; otherwise the input is taken as jamo and text.
func runPipe(lay *layout.Layout, useKeys bool) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		composer := compose.NewStringComposer()
		for _, r := range line {
			composer.PushRune(resolveRune(lay, r, useKeys))
		}
		if _, err := writer.WriteString(composer.Flush()); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func resolveRune(lay *layout.Layout, r rune, useKeys bool) rune {
	if !useKeys {
		return r
	}
	if j, ok := lay.Jamo(r); ok {
		return j
	}
	return r
}

// runInteractive composes keystrokes live, redrawing the current line after
// every event. Enter commits the line to stdout; Esc or Ctrl+C quits.
func runInteractive(lay *layout.Layout, preedit bool) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	composer := compose.NewStringComposer()
	redraw := func() {
		if preedit {
			fmt.Printf("\r\033[K%s", composer.String())
		}
	}
	redraw()

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC:
			fmt.Println()
			return nil
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			if _, err := composer.Pop(); err != nil && !errors.Is(err, compose.ErrEmpty) {
				return err
			}
		case keyboard.KeySpace:
			composer.PushRune(' ')
		case keyboard.KeyEnter:
			fmt.Printf("\r\033[K%s\n", composer.Flush())
			composer.Reset()
		default:
			if char == 0 {
				continue
			}
			if j, ok := lay.Jamo(char); ok {
				composer.PushRune(j)
			} else {
				composer.PushRune(char)
			}
		}
		redraw()
	}
}
