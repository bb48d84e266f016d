package main

import (
	"checkersboard/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunCheckers(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
