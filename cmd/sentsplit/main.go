// Command sentsplit splits Ancient Greek and Latin text into sentences and
// evaluates the splitter against gold corpora.
package main

import "os"

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
