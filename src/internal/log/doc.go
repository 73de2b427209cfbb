// Package log provides simple leveled logging for cf-ip-updater.
//
// Messages carry a colored level prefix ([DBG], [INF], [WRN], [ERR]).
// Debug output is only printed in verbose mode. Errors go to stderr,
// everything else to stdout unless SetForceStdErr is enabled.
//
//	log.Infof("Updated IP list in %s", path)
//	log.SetVerbose(true)
//	log.Debugf("Source %s returned %d bytes", url, n)
//
// Colors are meant for terminals; main turns them off when stdout is not one.
// Tests can redirect output with SetOutput.
package log
