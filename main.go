package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

var (
	promptFlag   = flag.String("p", DefaultPrompt, "command prompt")
	silentFlag   = flag.Bool("s", false, "suppress line count diagnostics")
	debugFlag    = flag.Bool("d", false, "log debug traces to standard error")
	promptIsSet  bool
	usageMessage = "usage: led [-p prompt] [-s] [-d] file"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usageMessage)
		flag.PrintDefaults()
	}
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "p" {
			promptIsSet = true
		}
	})

	log.SetPrefix("led: ")
	log.SetOutput(io.Discard)
	if *debugFlag {
		log.SetOutput(os.Stderr)
	}

	switch args := flag.Args(); len(args) {
	case 0:
		fmt.Fprintln(os.Stderr, "no filename given")
		fmt.Fprintln(os.Stderr, usageMessage)
		os.Exit(1)
	case 1:
	default:
		fmt.Fprintln(os.Stderr, "too many arguments")
		fmt.Fprintln(os.Stderr, usageMessage)
		os.Exit(1)
	}

	prompt := *promptFlag
	if !promptIsSet && !term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = ""
	}

	ed := NewEditor(
		WithStdin(os.Stdin),
		WithStdout(os.Stdout),
		WithStderr(os.Stderr),
		WithPrompt(prompt),
		WithSilent(*silentFlag),
		WithFile(flag.Arg(0)),
	)
	ed.catchSignals()
	if err := ed.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
