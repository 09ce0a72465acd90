package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/bday/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "bday",
		Short:   "A birthday card in your terminal",
		Version: version.Get(),
		RunE:    runTUI,
	}
	rootCmd.Flags().Bool(flagSkipLoading, false, "skip the loading screen and start on the countdown")

	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
