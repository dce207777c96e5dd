package main

import "github.com/c2n2p/portal/cmd/c2n2p/cmd"

func main() {
	cmd.Execute()
}
