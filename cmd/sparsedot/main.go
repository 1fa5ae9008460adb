package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/evilsocket/islazy/str"
	"github.com/sirupsen/logrus"

	"github.com/projekter/sparse-dot/pkg/sparsedot"
	"github.com/projekter/sparse-dot/pkg/sparsedot/logging"
)

const (
	prompt  = "\033[31m»\033[0m "
	history = "/tmp/sparsedot.tmp"
)

var (
	evalString = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	debug      = flag.Bool("debug", false, "Log bridge debug records.")
	noREPL     = flag.Bool("no-repl", false, "Exit after running -eval commands.")
)

func die(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	log := logrus.New()
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	bridge, err := sparsedot.New(sparsedot.WithLogger(logging.NewLogrus(log)))
	if err != nil {
		die("cannot initialize engine: %v\n", err)
	}
	s := &session{bridge: bridge, out: os.Stdout}

	for _, cmd := range str.SplitBy(*evalString, ";") {
		if err := dispatch(cmd, s); err != nil {
			fmt.Printf("%s\n", err)
		}
	}
	if *noREPL || s.quit {
		return
	}

	reader, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("sparsedot@%s %s", bridge.Engine().Name, prompt),
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completers,
	})
	if err != nil {
		die("%v\n", err)
	}
	defer reader.Close()

	for !s.quit {
		if line, err := reader.Readline(); err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else {
			for _, cmd := range str.SplitBy(line, ";") {
				if err := dispatch(cmd, s); err != nil {
					fmt.Printf("%s\n", err)
				}
			}
		}
	}
}
