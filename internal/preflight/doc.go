// Package preflight provides readiness checks for the executables and
// filesystem paths audio2mp4 depends on.
//
// The CLI "check" command renders these results; conversions themselves
// perform their own fail-fast checks and do not call into this package.
package preflight
