package main

import "github.com/vedux98/UX-Audit/cmd"

func main() {
	cmd.Execute()
}
