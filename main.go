package main

import "github.com/tinysteps/session-service/cmd"

func main() {
	cmd.Execute()
}
