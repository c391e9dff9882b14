// Command msalign is the CLI for multi-speaker dialogue alignment.
//
// Usage:
//
//	msalign [command] [options]
//
// Commands:
//
//	align    Align a hypothesis against a speaker-labeled reference
//	segment  Print the cut indices an auto/manual segmentation would use
//	csv      Run the alignment pipeline against a CSV file
//	serve    Start the HTTP API server
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
