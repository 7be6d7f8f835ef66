package main

import (
	"flag"

	"volunteerhub_backend/internal/app"
)

func main() {
	mode := flag.String("mode", "full", "generation mode: full, core or wipe")
	flag.Parse()

	app.Run(*mode)
}
