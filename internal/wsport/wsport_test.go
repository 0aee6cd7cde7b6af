package wsport

import (
	"fmt"
	"testing"
)

// envOf builds a getenv func backed by a map, so tests never touch the
// real process environment.
func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

var noEnv = envOf(nil)

func TestResolveFlagArgument(t *testing.T) {
	for _, port := range []uint16{0, 1, 80, 8765, 9999, 65535} {
		args := []string{fmt.Sprintf("--ws-port=%d", port)}
		if got := Resolve(args, noEnv); got != port {
			t.Errorf("Resolve(%v) = %d, want %d", args, got, port)
		}
	}
}

func TestResolveBareArgument(t *testing.T) {
	if got := Resolve([]string{"9001"}, noEnv); got != 9001 {
		t.Errorf("Resolve([9001]) = %d, want 9001", got)
	}
}

func TestResolveMalformedArgumentFallsThrough(t *testing.T) {
	cases := []string{
		"--ws-port=",
		"--ws-port=abc",
		"--ws-port=65536",
		"--ws-port=-1",
		"not-a-port",
		"70000",
	}
	for _, arg := range cases {
		if got := Resolve([]string{arg}, noEnv); got != DefaultPort {
			t.Errorf("Resolve([%q]) = %d, want default %d", arg, got, DefaultPort)
		}
	}
}

func TestResolveEnvironment(t *testing.T) {
	env := envOf(map[string]string{EnvVar: "7000"})
	if got := Resolve(nil, env); got != 7000 {
		t.Errorf("Resolve(nil, env TAURI_WS_PORT=7000) = %d, want 7000", got)
	}
}

func TestResolveMalformedEnvironmentFallsThrough(t *testing.T) {
	for _, v := range []string{"", "xyz", "99999"} {
		env := envOf(map[string]string{EnvVar: v})
		if got := Resolve(nil, env); got != DefaultPort {
			t.Errorf("Resolve(nil, env=%q) = %d, want default %d", v, got, DefaultPort)
		}
	}
}

func TestResolveArgumentBeatsEnvironment(t *testing.T) {
	env := envOf(map[string]string{EnvVar: "7000"})
	if got := Resolve([]string{"--ws-port=9999"}, env); got != 9999 {
		t.Errorf("flag should win over environment, got %d", got)
	}
}

func TestResolveMalformedArgumentDegradesToEnvironment(t *testing.T) {
	env := envOf(map[string]string{EnvVar: "7000"})
	if got := Resolve([]string{"--ws-port=bogus"}, env); got != 7000 {
		t.Errorf("malformed flag should degrade to environment, got %d", got)
	}
}

func TestResolveDefault(t *testing.T) {
	if got := Resolve(nil, noEnv); got != DefaultPort {
		t.Errorf("Resolve(nil) = %d, want %d", got, DefaultPort)
	}
}

func TestResolveWithDefaultFallback(t *testing.T) {
	if got := ResolveWithDefault(nil, noEnv, 9100); got != 9100 {
		t.Errorf("ResolveWithDefault(nil) = %d, want configured fallback 9100", got)
	}
}

func TestResolveWithDefaultArgumentAndEnvStillWin(t *testing.T) {
	if got := ResolveWithDefault([]string{"--ws-port=9999"}, noEnv, 9100); got != 9999 {
		t.Errorf("argument should win over fallback, got %d", got)
	}

	env := envOf(map[string]string{EnvVar: "7000"})
	if got := ResolveWithDefault(nil, env, 9100); got != 7000 {
		t.Errorf("environment should win over fallback, got %d", got)
	}
}

func TestFreePort(t *testing.T) {
	port, err := FreePort()
	if err != nil {
		t.Fatalf("FreePort failed: %v", err)
	}
	if port == 0 {
		t.Error("FreePort returned 0")
	}
}
