//go:build !unix

package main

func (ed *Editor) catchSignals() {}
