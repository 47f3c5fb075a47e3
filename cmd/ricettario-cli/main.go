package main

import "ricettario/cmd/ricettario-cli/cmd"

func main() {
	cmd.Execute()
}
