package main

import "github.com/akeleontechnologies/taam-app/cmd"

func main() {
	cmd.Execute()
}
