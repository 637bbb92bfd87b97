package main

import "github.com/emilythestrangee/qanda/backend/cmd/qanda/cmd"

func main() {
	cmd.Execute()
}
