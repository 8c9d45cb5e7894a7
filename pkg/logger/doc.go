// Package logger builds slog loggers and keeps attribute naming consistent
// across the module.
//
// New creates a *slog.Logger from functional options (format, level,
// output, static attributes and context extractors). Discard returns a
// logger that drops everything; it is the default of every component that
// accepts a logger, so the library stays silent unless a caller opts in.
//
// Attribute helpers such as Component, Error, Duration, Element, Bytes and
// Nodes return slog.Attr values with fixed keys:
//
//	log := logger.New(logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
//	log.Debug("mjml document rendered",
//	    logger.Component("mjml"),
//	    logger.Bytes(2048),
//	    logger.Duration(time.Millisecond),
//	)
package logger
