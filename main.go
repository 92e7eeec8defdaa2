package main

import "github.com/swiftctx/swiftctx/cmd"

func main() {
	cmd.Execute()
}
