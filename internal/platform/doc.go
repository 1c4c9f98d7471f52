// Package platform provides cross-platform file permission helpers. On Unix
// systems it sets mode bits directly; on Windows the calls are no-ops because
// executability is not expressed through permission bits.
package platform
