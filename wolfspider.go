// Package wolfspider provides a single-site web crawler that saves every
// reachable page as a local markdown document. Starting from a root URL it
// follows hyperlinks within the root's domain, visits each page exactly
// once, and persists one artifact per page, skipping artifacts that already
// exist so a crawl can be re-run or resumed safely.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package wolfspider
