package main

import "github.com/KaramelBytes/sensorclean-cli/cmd"

func main() {
	cmd.Execute()
}
