package main

import "nathanbeddoewebdev/quotebox/cmd"

func main() {
	cmd.Execute()
}
