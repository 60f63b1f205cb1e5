package main

import "memoflow/cmd/memoflow-cli/cmd"

func main() {
	cmd.Execute()
}
