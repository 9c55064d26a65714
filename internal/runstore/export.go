package runstore

import (
	"errors"
	"fmt"

	"github.com/pcorbett/jumplab/internal/parquet"
)

// ExecuteRunsExport writes all tracked runs, models and predictions to
// Parquet files next to the given output path.
func ExecuteRunsExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no tracked runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	models, err := store.GetAllModels()
	if err != nil {
		return fmt.Errorf("failed to retrieve models: %w", err)
	}
	predictions, err := store.GetAllPredictions()
	if err != nil {
		return fmt.Errorf("failed to retrieve predictions: %w", err)
	}

	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetModels := parquet.ConvertModelRecords(models)
	parquetPredictions := parquet.ConvertPredictionRecords(predictions)

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteModelRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	modelsFile := outputFile + ".models.parquet"
	if err := parquet.WriteLevelModelsParquet(parquetModels, modelsFile); err != nil {
		return fmt.Errorf("failed to write models: %w", err)
	}
	fmt.Printf("Exported %d fitted models to: %s\n", len(parquetModels), modelsFile)

	predictionsFile := outputFile + ".predictions.parquet"
	if err := parquet.WritePredictionsParquet(parquetPredictions, predictionsFile); err != nil {
		return fmt.Errorf("failed to write predictions: %w", err)
	}
	fmt.Printf("Exported %d predictions to: %s\n", len(parquetPredictions), predictionsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
