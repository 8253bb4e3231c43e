package main

import "github.com/clideps/clideps/src/cmd"

func main() {
	cmd.Execute()
}
