// SPDX-License-Identifier: Unlicense OR MIT

package webgl

import (
	"log/slog"

	"gioui.org/webgl/internal/log"
)

// SetLogger configures the logger of the webgl packages, including the
// headless backend. By default nothing is logged.
//
// Validation errors are logged at [slog.LevelDebug], context loss at
// [slog.LevelWarn].
func SetLogger(l *slog.Logger) {
	log.Set(l)
}
