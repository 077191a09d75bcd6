package main

import "github.com/dentalops/roster/api"

func main() {
	api.MainLoop()
}
