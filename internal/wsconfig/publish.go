// Package wsconfig writes the generated ws-config.js artifact that hands the
// resolved bridge port to the embedded map page at load time.
//
// The artifact is a one-way hand-off: the shell writes it, the page reads it,
// nothing reads it back. Publication is deliberately separate from port
// resolution so callers decide when the filesystem is touched.
package wsconfig

import (
	"fmt"
	"os"
	"time"
)

// timestampLayout matches the human-readable form the map page logs.
const timestampLayout = "2006-01-02 15:04:05"

// Render formats the artifact payload for the given port and time.
func Render(port uint16, now time.Time) string {
	return fmt.Sprintf(
		"// Auto-generated WebSocket configuration\n"+
			"window.WS_CONFIG = {\n"+
			"\tport: %d,\n"+
			"\ttimestamp: '%s'\n"+
			"};\n"+
			"console.log('[ws-config.js] WebSocket port configured:', %d);",
		port, now.Format(timestampLayout), port)
}

// Publish writes the artifact to path, truncating any existing content.
// No locking and no atomic rename: a crash mid-write can leave a truncated
// file, which the page tolerates by falling back to its URL parameter.
//
// The returned error is advisory. Callers log it and carry on; a failed
// publish never invalidates the resolved port.
func Publish(port uint16, now time.Time, path string) error {
	if err := os.WriteFile(path, []byte(Render(port, now)), 0644); err != nil {
		return fmt.Errorf("write ws-config %s: %w", path, err)
	}
	return nil
}
