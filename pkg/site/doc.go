// Package site drives a full generation run. A Builder walks the page
// registry in order, renders each page through the shared template, copies
// the static assets and writes a sitemap:
//
//	builder := site.New(site.WithOutputDir("public"))
//	result, err := builder.Build(ctx)
//
// Page failures are collected rather than aborting the run, so one broken
// page leaves the others written. The returned error joins every failure.
package site
