package main

import (
	"os"

	"github.com/globstari-go/globstari/internal/app"
	"github.com/globstari-go/globstari/internal/config"
)

func main() {
	cfg := config.New()

	application := app.New(cfg)
	application.Run()

	if cfg.OutputFile != "" {
		if f, ok := application.Output.(*os.File); ok {
			f.Close()
		}
	}
}
