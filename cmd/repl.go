package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/smarthome-go/juno/juno"
	"github.com/smarthome-go/juno/juno/config"
)

const (
	historyFile = ".juno_history"
	promptMain  = "juno> "
	replFile    = "<repl>"
)

var banner = fmt.Sprintf("Juno %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", version)

func repl(cfg config.Config) error {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out := newPrinter(cfg.Color)

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return nil
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		ln.AppendHistory(line)

		result := juno.Parse(line, replFile)
		if cfg.ShowTokens {
			for _, token := range result.Tokens {
				fmt.Println(token)
			}
		}
		for _, node := range result.Nodes {
			fmt.Print(dumpNode(node, cfg.Dump))
		}
		out.diagnostics(result.Errors, line)
	}
}
