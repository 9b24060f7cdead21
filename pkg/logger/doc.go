/*
Package logger provides a structured logging solution for the patterntext
application. It wraps uber-go/zap logger to provide a simpler interface with
support for different verbosity levels, structured fields and two encodings.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	log.Info("Application started")
	log.Debug("Validating pattern") // Only shown with verbosity >= 1
	log.Trace("Expanding pattern")  // Only shown with verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Encodings:

EncodingJSON writes one JSON object per entry:

	{"level":"info","ts":"2024-01-20T15:04:05.000Z","message":"Rendered sentence","length":7}

EncodingText writes colon separated lines, with structured fields appended
as a JSON object:

	DEBUG:20.01.2024-15:04:05:User input: STTTS 7
	ERROR:20.01.2024-15:04:05:0 is not valid number (should be integer greater than 0)

Structured Logging:

	log.WithFields(logger.Fields{
	    "pattern": "STTTS",
	    "length":  7,
	}).Debug("Rendered sentence")

Log files are usually buffered by the operating system only, but callers
should still call Sync before closing the underlying writer.
*/
package logger
