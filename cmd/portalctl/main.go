package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	a := &cliApp{out: os.Stdout, now: time.Now}
	err := SetupCommands(a).Execute()
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
