// Command castrec is the thin CLI surface over the recording-and-extraction
// engine: record, analyze, marker add/list, and copy.
package main

import (
	"os"

	"castrec/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
