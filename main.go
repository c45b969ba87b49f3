package main

import (
	"os"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
