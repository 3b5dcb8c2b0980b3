// Command recordgen generates persistent record classes from table definitions.
package main

import (
	"os"

	"github.com/syssam/recordgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
