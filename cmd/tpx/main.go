package main

import (
	"os"

	"github.com/OpenTraceLab/OpenTraceProbe/cmd/tpx/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
