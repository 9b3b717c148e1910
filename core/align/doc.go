// Package align orchestrates match discovery: it owns one immutable
// suffix-array index over the reference and runs the finder/reducer per
// query, handling strand selection and the parallel fan-out across many
// queries. It never imports the CLI or output layers; keep it domain-only.
package align
