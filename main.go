package main

import "github.com/sudoDevesh/swagger2jmeter/cmd"

func main() {
	cmd.Execute()
}
