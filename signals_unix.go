//go:build unix

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// catchSignals keeps SIGINT from ending the session: the interrupt is
// reported and commands are read as before, so a modified buffer still
// goes through the quit prompt. SIGQUIT is ignored.
func (ed *Editor) catchSignals() {
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT, syscall.SIGQUIT)
	go ed.handleSignals(sigch)
}

func (ed *Editor) handleSignals(sigch <-chan os.Signal) {
	for sig := range sigch {
		log.Printf("signal: %v\n", sig)
		switch sig {
		case syscall.SIGINT:
			fmt.Fprintf(ed.stderr, "\n%s\n", ErrInterrupt)
		case syscall.SIGQUIT:
			// ignore
		}
	}
}
