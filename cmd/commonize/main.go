package main

import "commonize/cmd/commonize/commands"

func main() {
	commands.Execute()
}
