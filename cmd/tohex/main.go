// Command tohex converts a raw RGB image file into a packed hexadecimal
// word list.
//
// It reads image.data from the current directory and writes data.txt, one
// line of comma-separated 64-bit words where each bit marks a pixel whose
// first channel is at full intensity. The file names are fixed; the command
// takes no flags.
package main

import (
	"log"
	"os"

	"github.com/flavioheleno/globetrace/hexpack"
)

const (
	inputFile  = "image.data"
	outputFile = "data.txt"
)

func main() {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", inputFile, err)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", outputFile, err)
	}

	if err := hexpack.Encode(out, data); err != nil {
		out.Close()
		log.Fatalf("Failed to write %s: %v", outputFile, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", outputFile, err)
	}
}
