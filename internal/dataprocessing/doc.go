// Package dataprocessing condenses a YCSB evaluation sheet into a per
// iteration throughput summary.
//
// # Architecture
//
// The package is organized into four components:
//
// 1. Parser: reads the evaluation sheet into a typed domain.Grid
// 2. ColumnClassifier: decides which columns survive and how wide they are
// 3. BlockMetricComputer: turns a block of trial rows into one value
// 4. SummaryBuilder: runs the header and data passes over the column plan
//
// # Usage
//
//	f, err := dataprocessing.OpenWorkbook("results.xlsx")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	grid, err := dataprocessing.LoadGrid(f, "evaluation")
//	if err != nil {
//	    return err
//	}
//	summary, err := dataprocessing.NewSummaryBuilder(dataprocessing.DefaultLayout(), logger).Build(grid)
//
// # Data Flow
//
//	Evaluation sheet → Grid → column plan → block metrics → Summary
//
// # Metrics
//
// Metadata columns (the first 16) are passed through. Latency columns named
// like insert/read/scan ...average... become operations per second
// (1e6 / mean latency in microseconds). When the next column is a StdD
// column the block also yields the stddev as a fraction of the mean
// latency.
//
// # Error Handling
//
// Bad or missing cells degrade to pass-through values and are never
// reported as errors. A missing sheet or an empty header row is fatal.
package dataprocessing
