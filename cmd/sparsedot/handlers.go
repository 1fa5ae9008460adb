package main

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/str"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
)

// session is the state shared by every command.
type session struct {
	bridge *sparsedot.Bridge
	out    io.Writer
	quit   bool
}

type handlerCb func(ctx context.Context, cmd string, args []string, s *session) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

var handlers = []handler{}
var completers = (*readline.PrefixCompleter)(nil)

func init() {
	handlers = []handler{
		helpHandler,
		quitHandler,
		infoHandler,
		variantsHandler,
		demoHandler,
		solveHandler,
	}

	tmp := []readline.PrefixCompleterInterface{}
	for _, h := range handlers {
		tmp = append(tmp, h.Completer)
	}
	completers = readline.NewPrefixCompleter(tmp...)
}

func dispatch(cmd string, s *session) error {
	cmd = str.Trim(cmd)
	if cmd == "" {
		return nil
	}
	for _, handler := range handlers {
		match := false
		args := []string{}

		if handler.Parser != nil {
			if result := handler.Parser.FindStringSubmatch(cmd); result != nil && len(result) == handler.Parser.NumSubexp()+1 {
				cmd = result[1]
				args = result[2:]
				match = true
			}
		} else if strings.EqualFold(handler.Name, cmd) {
			match = true
		}

		if match {
			return handler.Callback(context.Background(), cmd, args, s)
		}
	}

	return fmt.Errorf("command not found: %s", cmd)
}
