package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/archimedix/biblioteca.archimedica.eu/cmd/atomdoc"
	"github.com/archimedix/biblioteca.archimedica.eu/internal/version"
)

func main() {
	rootCmd := atomdoc.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ATOMDOC",
		Section: "1",
		Source:  "atomdoc " + version.Version,
		Manual:  "atomdoc manual",
	}

	// With a directory argument, write one page per command there
	if len(os.Args) > 1 {
		if err := doc.GenManTree(rootCmd, header, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
			os.Exit(1)
		}
		return
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
