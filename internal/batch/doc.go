// Package batch enriches person records with their BMI, category and risk,
// and cross-checks the resulting category counts.
//
// enrich.go: Enricher reads the height and weight fields of one record and
// returns a new types.Enriched. The input record is never modified.
//
// processor.go: Processor applies an Enricher to every record, either
// sequentially or on a bounded errgroup worker pool. Both modes return
// results in input order. The first failing row stops the batch.
//
// count.go: CountByCategory counts records by BMI range, VerifyCount counts
// them by stored category label. The two paths are independent; agreement
// between them is the batch's consistency check.
package batch
