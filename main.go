package main

import (
	"os"

	"github.com/muhammadolammi/resumefields/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
