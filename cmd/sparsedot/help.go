package main

import (
	"context"
	"regexp"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/tui"
)

var helpHandler = handler{
	Name:        "HELP",
	Mnemonic:    "HELP",
	Completer:   readline.PcItem("help"),
	Description: "Show the available commands and their descriptions.",
	Callback: func(_ context.Context, cmd string, args []string, s *session) error {
		rows := [][]string{}

		for _, h := range handlers {
			rows = append(rows, []string{h.Mnemonic, h.Description})
		}

		tui.Table(s.out, []string{"command", "description"}, rows)

		return nil
	},
}

var quitHandler = handler{
	Name:        "QUIT",
	Mnemonic:    "QUIT, Q or EXIT",
	Completer:   readline.PcItem("quit"),
	Parser:      regexp.MustCompile(`^(?i)(QUIT|Q|EXIT)$`),
	Description: "Exit the client.",
	Callback: func(_ context.Context, cmd string, args []string, s *session) error {
		s.quit = true
		return nil
	},
}
