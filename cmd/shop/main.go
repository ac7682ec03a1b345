package main

import (
	"os"

	"fsanano/shop-client/cmd/shop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
