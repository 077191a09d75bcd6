package main

import "github.com/dentalops/roster/cmd/rosterctl/command"

func main() {
	command.Execute()
}
