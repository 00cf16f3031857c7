package main

import "github.com/nfrund/actorkit-site/cmd/sitectl/cmd"

func main() {
	cmd.Execute()
}
