package main

import "github.com/Tiliavir/timecard/cmd"

func main() {
	cmd.Execute()
}
