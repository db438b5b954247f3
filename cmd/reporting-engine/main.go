package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"finengine/internal/cli"
	"finengine/internal/engine/reporting"
)

// @title Reporting Engine
// @version 1.0.0
// @BasePath /
func main() {
	os.Exit(cli.Execute(reporting.New()))
}
