package main

import (
	"github.com/leriomaggio/pyre-check/cmd"
)

func main() {
	cmd.Execute()
}
