package main

import (
	"github.com/mchmarny/semv/pkg/cli"
)

func main() {
	cli.Execute()
}
