// Package wsport resolves the WebSocket bridge port the map page connects to.
//
// Resolution is a pure function over the argument list and environment so the
// precedence rules can be tested without touching the process state. Writing
// the generated ws-config.js artifact is a separate concern (see wsconfig).
package wsport

import (
	"net"
	"strconv"
	"strings"
)

// DefaultPort is used when no port is supplied via argument or environment.
const DefaultPort uint16 = 8765

// EnvVar is the environment variable the launcher sets to hand the shell
// its bridge port.
const EnvVar = "TAURI_WS_PORT"

// flagPrefix is the long-form first argument the launcher passes.
const flagPrefix = "--ws-port="

// Resolve determines the bridge port. Precedence, first match wins:
//
//  1. first argument of the form --ws-port=N
//  2. first argument as a bare number
//  3. the TAURI_WS_PORT environment variable
//  4. DefaultPort
//
// Malformed or out-of-range values fall through to the next source; Resolve
// never fails.
func Resolve(args []string, getenv func(string) string) uint16 {
	return ResolveWithDefault(args, getenv, DefaultPort)
}

// ResolveWithDefault is Resolve with the final fallback replaced, so a
// port from config.toml can stand in for the built-in default while
// arguments and environment keep their precedence.
func ResolveWithDefault(args []string, getenv func(string) string, fallback uint16) uint16 {
	if len(args) > 0 {
		arg := args[0]
		if strings.HasPrefix(arg, flagPrefix) {
			if p, ok := parsePort(strings.TrimPrefix(arg, flagPrefix)); ok {
				return p
			}
		} else if p, ok := parsePort(arg); ok {
			return p
		}
	}

	if v := getenv(EnvVar); v != "" {
		if p, ok := parsePort(v); ok {
			return p
		}
	}

	return fallback
}

// parsePort parses s as an unsigned 16-bit port number.
func parsePort(s string) (uint16, bool) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(n), true
}

// FreePort asks the kernel for an unused TCP port on localhost.
// Used by the dev bridge when no port is given.
func FreePort() (uint16, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return uint16(l.Addr().(*net.TCPAddr).Port), nil
}
