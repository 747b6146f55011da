package main

import (
	"fmt"
	"os"

	"github.com/archimedix/biblioteca.archimedica.eu/cmd/atomdoc"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/ui/styles"
)

func main() {
	rootCmd := atomdoc.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		styles.SetEnabled(styles.DetectColor(os.Stderr))
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf(atomdoc.MsgErrorPrefix, err)))
		os.Exit(1)
	}
}
