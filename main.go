package main

import "github.com/waxworks/stylus/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
