// Package project inspects the host JavaScript project: it reads and caches
// package.json, checks whether a release-hub configuration already exists,
// and reports whether the release-hub library is listed as a dependency.
package project
