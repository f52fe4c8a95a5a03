// Package main is the NekoBot version entrypoint: it prints the framework
// version or serves it over HTTP.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"nekobot/internal/templates"
	"nekobot/internal/version"

	"github.com/gin-gonic/gin"
	sloggin "github.com/samber/slog-gin"
)

var bindAddr string
var templatePath string

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true}))

func main() {
	run(os.Args[1:], os.Stdout)
}

// run dispatches on the subcommand in args, writing user-facing output to w
func run(args []string, w io.Writer) {
	if len(args) >= 1 && (args[0] == "version" || args[0] == "--version") {
		fmt.Fprintln(w, version.Get())
		return
	}

	fmt.Fprintf(w, "NekoBot, version %s\n\n", version.Get())

	if len(args) < 1 {
		printUsage(w)
		return
	}

	switch args[0] {
	case "serve":
		serve()
	case "help":
		help(w)
	default:
		printUsage(w)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nekobot [version|serve|help]")
}

func help(w io.Writer) {
	fmt.Fprintln(w, "The following environment variables are used by \"serve\":")
	fmt.Fprintln(w, `- BIND_ADDR: address to listen on, e.g., ":8080" to listen on all IPs at port 8080`)
	fmt.Fprintln(w, "- TEMPLATE_PATH: (optional) template directory reloaded from disk in gin debug mode; embedded templates are used when unset")
}

func serve() {
	var err = getenv()
	if err != nil {
		logger.Error("Cannot start server", "error", err)
		os.Exit(1)
	}

	var router = gin.New()
	var ginLog = logger.With("log.source", "gin.Engine")
	router.Use(sloggin.New(ginLog))
	router.Use(gin.Recovery())

	var server = NewServer(router, version.Get(), logger.With("log.source", "main.Server"))
	server.loadTemplates(templatePath, templates.FS)

	logger.Info("Starting NekoBot version server", "addr", bindAddr, "version", version.Get())
	err = server.Run(bindAddr)
	if err != nil {
		logger.Error("Could not start server", "error", err)
		os.Exit(1)
	}
}
