package main

import "github.com/masmgr/raport-go/cmd"

func main() {
	cmd.Run()
}
