package main

import "github.com/jsphweid/sheetmusic/cmd"

func main() {
	cmd.Execute()
}
