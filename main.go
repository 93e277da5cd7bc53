package main

import "github.com/nikogura/distro-quiz/cmd"

func main() {
	cmd.Execute()
}
