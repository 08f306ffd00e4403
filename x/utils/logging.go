package utils

import (
	"time"

	"github.com/lpstake/lpstake"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ lpstake.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx, next lpstake.Checker) (*lpstake.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx lpstake.Context, store lpstake.KVStore, tx lpstake.Tx, next lpstake.Deliverer) (*lpstake.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx lpstake.Context, tx lpstake.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := lpstake.GetLogger(ctx).With(
		"path", lpstake.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
