/*
Package debug provides conditional runtime assertions and debug logging.

# Using Assert

To enable runtime assertions, build with the assert tag. When the assert tag
is omitted, the code for the assertion is omitted from the binary. The arena
uses this to check caller obligations that are otherwise undefined behavior,
such as writing from a source shorter than the destination span.

# Using Log

To enable runtime debug logs, build with the debug tag. Logs are written to
stderr through a tint handler. When the debug tag is omitted, the code for
logging is omitted from the binary.
*/
package debug
