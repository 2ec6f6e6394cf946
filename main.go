package main

import "github.com/nikogura/lifesim/cmd"

func main() {
	cmd.Execute()
}
