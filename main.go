// ./main.go
package main

import (
	"github.com/kc92/desperados-destiny-bots/cmd"
)

// main is the entry point for the destinybot CLI.
func main() {
	cmd.Execute()
}
