package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// @title Maternal Care API
// @version 1.0
// @description Evaluaciones MEWS, contactos de emergencia, alertas SOS y equipo de cuidado.
// @BasePath /
func main() {
	root := &cobra.Command{
		Use:           "maternal-care",
		Short:         "Maternal care API: MEWS assessments, SOS alerts and care team",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().String("config", ".env", "Archivo .env opcional")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newScoreCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
