package main

import "github.com/nfrund/portview/cmd/portview-cli/cmd"

func main() {
	cmd.Execute()
}
