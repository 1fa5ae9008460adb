// Package logging provides a minimal logging facade for the sparse bridge.
//
// The Logger interface wraps a subset of log/slog so applications can plug in
// their own implementation. Two adapters ship with the package:
//
//	// slog, bound to slog.Default() when nil
//	logger := logging.New(nil)
//
//	// logrus, bound to logrus.StandardLogger() when nil
//	logger = logging.NewLogrus(logrus.New())
//
// Records that report an extra copy of caller data carry a Cost attribute:
//
//	logger.Warn(ctx, "dense operand copied", logging.Cost("bytes", 1<<20))
//	// bytes="1.0 MiB"
package logging
