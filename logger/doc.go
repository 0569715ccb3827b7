/*

Package logger constructs the [*slog.Logger] an application logs through.

# Overview

[New] picks the [slog.Handler] backing the logger from its options.
In development, records are printed as colorized text:

	2024/04/28 15:55:21 [DEBUG] registered enumeration kind=registry enum=Status members=3

Otherwise, records are printed as JSON, one per line.

# Sentry

When configured with a Sentry DSN through [WithSentryDSN],
every record at [slog.LevelError] or above is also sent to Sentry.
If the record carries an error under the "error" key, that error is captured;
otherwise, the message is.

*/
package logger
