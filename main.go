package main

import (
	"embed"

	"github.com/lkeller19/bankledger/cmd"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	cmd.Execute(migrationsFS)
}
