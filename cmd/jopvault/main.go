package main

import "jopvault/cmd/jopvault/cmd"

func main() {
	cmd.Execute()
}
