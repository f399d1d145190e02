// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with console or JSON encoding,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithFields),
//   - level configuration and parsing utilities,
//   - convenience functions (InfoKV, ErrorKV, etc.).
//
// Every service accepts a context and extracts the logger from it, so request
// scoped fields such as the request id follow a call through the stack.
package logger
