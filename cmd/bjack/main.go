package main

import (
	"github.com/efuentes/blackjack-go/internal/cli"
)

func main() {
	cli.Execute()
}
