// Package cmd defines the command-line interface for jumplab.
package cmd

import (
	"github.com/pcorbett/jumplab/internal/contract"
	"github.com/pcorbett/jumplab/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(jumpCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(residualsCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("level", string(schema.AllLevels), "Playing level: hs or college or pro or all")
	rootCmd.PersistentFlags().Float64("min-bat", contract.DefaultMinBatSpeed, "Minimum plausible bat speed in mph")
	rootCmd.PersistentFlags().Float64("z-cut", contract.DefaultZCutoff, "Z-score cutoff for outlier removal")
	rootCmd.PersistentFlags().IntP("top", "t", contract.DefaultTopN, "Number of over/under performers to display")
	rootCmd.PersistentFlags().String("jump-col", "jump_height_cm", "Dataset column holding jump height in cm")
	rootCmd.PersistentFlags().String("bat-col", "bat_speed_mph", "Dataset column holding bat speed in mph")
	rootCmd.PersistentFlags().String("level-col", "playing_level", "Dataset column holding the playing level")
	rootCmd.PersistentFlags().String("id-col", "athlete_id", "Dataset column holding the athlete ID")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("run-backend", string(schema.NoneBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of jumpCmd to Viper
	jumpCmd.Flags().String("athlete", "", "Optional athlete name for report headers")
	jumpCmd.Flags().Int("sampling-rate", contract.DefaultSamplingRate, "Force-plate sampling rate in Hz")
	if err := viper.BindPFlags(jumpCmd.Flags()); err != nil {
		contract.LogFatal("Error binding jump flags", err)
	}

	// Bind all flags of predictCmd to Viper
	predictCmd.Flags().Float64("jump-height", 0, "Jump height in cm to project a bat speed for")
	predictCmd.Flags().Int("boot", 2000, "Number of bootstrap resamples")
	predictCmd.Flags().Int64("seed", 42, "Random seed for reproducible bootstrap draws")
	if err := viper.BindPFlags(predictCmd.Flags()); err != nil {
		contract.LogFatal("Error binding predict flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
