package main

import (
	"log"

	"cpu-scheduling/internal/cli"
)

func main() {
	if err := cli.BuildCLI().Execute(); err != nil {
		log.Fatalln(err)
	}
}
