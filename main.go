package main

import (
	"fmt"
	"os"

	"coderetriever/cmd"
	"coderetriever/pkg/logging"

	"go.uber.org/zap"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		logging.Logger.Error("coderetriever execution failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
