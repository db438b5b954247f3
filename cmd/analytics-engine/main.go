package main

import (
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"finengine/internal/cli"
	"finengine/internal/engine/analytics"
)

// @title Analytics Engine
// @version 1.0.0
// @BasePath /
func main() {
	os.Exit(cli.Execute(analytics.New(time.Now)))
}
