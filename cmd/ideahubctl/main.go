package main

import "github.com/ahmetcoskunkizilkaya/ideahub-backend/cmd/ideahubctl/commands"

func main() {
	commands.Execute()
}
