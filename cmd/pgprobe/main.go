package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/willibrandon/pgprobe/internal/config"
	"github.com/willibrandon/pgprobe/internal/conninfo"
	"github.com/willibrandon/pgprobe/internal/logger"
	"github.com/willibrandon/pgprobe/internal/probe"
	"github.com/willibrandon/pgprobe/internal/report"
)

// Version info (set by ldflags)
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "pgprobe [-d dbname] [-U username] [-h host] [-p port] [-t seconds]",
		Short: "Verify a PostgreSQL endpoint accepts your connection parameters",
		Long: `pgprobe makes a single connection attempt against a PostgreSQL server and
reports whether the supplied host, port, database, and user are actually
valid. Unlike pg_isready, it fails when the database or the user does not
exist.

Options (long forms use --opt=value):
  -d <name>   --dbname=<name>      target database
  -U <user>   --username=<user>    login role
  -h <host>   --hostname=<host>    server host name
              --hostaddr=<addr>    numeric server address
  -p <port>   --port=<port>        server port
  -t <secs>   --timeout=<secs>     connect timeout in seconds

The password is read by the client library from PGPASSWORD; it is never
accepted on the command line. Set PGDEBUG=1 to echo the rendered parameter
string before connecting.`,
		Version: version,
		// The probe owns its own flag grammar: -h is the server host, not
		// help, and long options match by prefix. Cobra hands us raw argv.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			os.Exit(run(args, os.Stdout, os.Stderr))
			return nil
		},
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(report.WriteError(os.Stderr, err))
	}
}

// run executes the whole pipeline and returns the process exit code:
// config defaults, argument parse, parameter string, one connect attempt,
// report.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		return report.WriteError(stderr, err)
	}

	debugEcho := os.Getenv("PGDEBUG") == "1"

	level := slog.LevelInfo
	if cfg.Debug || debugEcho {
		level = slog.LevelDebug
	}
	logger.Init(level, cfg.LogPath)
	defer logger.Close()

	spec := cfg.Seed()
	if err := conninfo.Parse(args, &spec); err != nil {
		logger.Error("argument parsing failed", "error", err)
		return report.WriteError(stderr, err)
	}

	connString := spec.ConnString()
	logger.Debug("rendered parameter string", "length", len(connString))
	if debugEcho {
		// Never includes credentials; the specification cannot carry them.
		fmt.Fprintf(stdout, "Conn string: %s\n", connString)
	}

	outcome := probe.Run(context.Background(), connString)
	return report.Write(stdout, stderr, outcome)
}
