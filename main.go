package main

import (
	"log/slog"

	"github.com/kirchner/dropdown-menu-sub000/internal/cmd"
	"github.com/kirchner/dropdown-menu-sub000/internal/log"
)

func main() {
	defer log.RecoverPanic("main", func() {
		slog.Error("Application terminated due to unhandled panic")
	})

	cmd.Execute()
}
