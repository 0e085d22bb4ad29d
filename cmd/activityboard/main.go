package main

import "github.com/nfrund/activityboard/cmd/activityboard/cmd"

func main() {
	cmd.Execute()
}
