package main

import "github.com/MokshaVS03/scam-url-detector/cmd"

func main() {
	cmd.Execute()
}
