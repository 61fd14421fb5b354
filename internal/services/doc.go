// Package services implements the converter's application layer. It ties
// the workbook I/O, the summary builder and the exporters together behind
// a single operation and owns the cross-cutting concerns of a run: run id,
// structured logging, tracing span and metrics.
//
// # Usage
//
//	svc := services.NewConversionService(cfg, telemetry, logger)
//	result, err := svc.Convert(ctx, "results.xlsx")
//	if err != nil {
//		// err is an *errors.AppError; errors.TypeOf(err) tells the category
//	}
//
// Conversions are synchronous and never retried. A failed conversion leaves
// the workbook on disk unchanged because it is only saved after every step
// succeeded.
package services
