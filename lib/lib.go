/*
File    : pluto/lib/lib.go

Package lib embeds Pluto's standard prelude — a small Error class and a
handful of pattern-functions written in Pluto itself rather than as Go
builtins, the way a language's "core" library is usually layered over its
primitive builtins. Loaded by default by both the CLI and the REPL,
skippable with --no-prelude.
*/
package lib

import _ "embed"

//go:embed prelude.pluto
var Prelude string
