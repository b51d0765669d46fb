package main

import (
	"fmt"
	"os"

	"kiro/editor"
)

func main() {
	e := editor.New()

	if err := e.EnterRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "kiro: %v\n", err)
		os.Exit(1)
	}
	defer e.RestoreTerminal()

	if err := e.Init(); err != nil {
		die(e, err)
	}

	if len(os.Args) > 1 {
		if err := e.OpenFile(os.Args[1]); err != nil {
			die(e, err)
		}
	}

	if err := e.Run(); err != nil {
		die(e, err)
	}

	e.ClearScreen()
}

// die restores the terminal before aborting so the user's shell is never
// left in raw mode.
func die(e *editor.Editor, err error) {
	e.RestoreTerminal()
	e.ClearScreen()
	fmt.Fprintf(os.Stderr, "kiro: %v\n", err)
	os.Exit(1)
}
