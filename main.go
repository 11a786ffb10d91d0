package main

import (
	"github.com/sessionctl/sessionctl/cmd"
	_ "github.com/sessionctl/sessionctl/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
