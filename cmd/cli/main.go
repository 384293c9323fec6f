package main

import "webtoonhub/cmd/cli/command"

func main() {
	command.Execute()
}
