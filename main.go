package main

import "github.com/jfmyers9/graplsub/cmd"

func main() {
	cmd.Execute()
}
