package probe

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/willibrandon/pgprobe/internal/logger"
)

// Kind discriminates probe outcomes.
type Kind int

const (
	// Success means the endpoint accepted a connection with the supplied
	// parameters.
	Success Kind = iota
	// Refused means the connection layer rejected the attempt: bad
	// credentials, unknown database or user, unreachable host, timeout.
	// An expected result for a connectivity probe.
	Refused
	// Failure covers everything else: cancellation, resource exhaustion,
	// internal defects.
	Failure
)

const (
	// StatusBad is the exit code for a refused connection where an attempt
	// was actually made, mirroring libpq's CONNECTION_BAD status.
	StatusBad = 1
	// NoAttempt is the exit code for a refusal before any connect attempt
	// could be made, such as a parameter string the library will not accept.
	NoAttempt = -1
)

// Outcome is the classified result of a single probe.
type Outcome struct {
	Kind    Kind
	Message string
	Code    int // exit code, meaningful for Refused outcomes
}

// Run performs exactly one blocking connect attempt with the given libpq
// keyword/value parameter string and classifies the result. The connect
// timeout, if any, rides in the parameter string as connect_timeout; there is
// no prober-side timer and no retry. Any connection that gets established is
// closed before Run returns.
func Run(ctx context.Context, connString string) Outcome {
	cfg, err := pgconn.ParseConfig(connString)
	if err != nil {
		logger.Debug("parameter string rejected", "error", err)
		return Outcome{Kind: Refused, Message: err.Error(), Code: NoAttempt}
	}

	logger.Debug("connecting",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Database,
		"user", cfg.User,
	)

	conn, err := pgconn.ConnectConfig(ctx, cfg)
	if err != nil {
		return classify(err)
	}
	defer conn.Close(context.Background())

	logger.Debug("connection accepted", "host", cfg.Host, "port", cfg.Port)
	return Outcome{Kind: Success}
}

// classify sorts a connect error into the refused or unexpected bucket.
// Everything the library reports about the attempt itself is an expected
// probe result and keeps the library's wording verbatim, so operators see
// the same text psql would show them.
func classify(err error) Outcome {
	if errors.Is(err, context.Canceled) {
		logger.Debug("probe canceled", "error", err)
		return Outcome{Kind: Failure, Message: err.Error()}
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr):
		logger.Debug("server rejected connection", "sqlstate", pgErr.Code)
	case pgconn.Timeout(err):
		logger.Debug("connect attempt timed out")
	default:
		logger.Debug("connect attempt failed", "error", err)
	}
	return Outcome{Kind: Refused, Message: err.Error(), Code: StatusBad}
}
