package schema

// Custom string types for type safety.
type (
	// MetricName identifies a single CMJ metric in the fixed vocabulary.
	MetricName string

	// PlayingLevel represents an athlete population group.
	PlayingLevel string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// Metric names used across extraction, output and export.
const (
	MetricBodyweight       MetricName = "bw_n"
	MetricPeakForce        MetricName = "peak_force_n"
	MetricPeakForceXBW     MetricName = "peak_force_xbw"
	MetricNetPeakForce     MetricName = "net_peak_force_n"
	MetricTimeToPeak       MetricName = "time_to_peak_ms"
	MetricRFD0To50         MetricName = "rfd_0_50_n_per_s"
	MetricRFD0To100        MetricName = "rfd_0_100_n_per_s"
	MetricRFD0To200        MetricName = "rfd_0_200_n_per_s"
	MetricImpulse0To200    MetricName = "impulse_0_200_ns"
	MetricNetImpulse0To200 MetricName = "net_impulse_0_200_ns"
)

// MetricLabels maps metric names to display labels for reports.
var MetricLabels = map[MetricName]string{
	MetricBodyweight:       "Bodyweight Estimate (N)",
	MetricPeakForce:        "Peak Force (N)",
	MetricPeakForceXBW:     "Peak Force (xBW)",
	MetricNetPeakForce:     "Net Peak Force (N)",
	MetricTimeToPeak:       "Time to Peak (ms)",
	MetricRFD0To50:         "RFD 0-50 ms (N/s)",
	MetricRFD0To100:        "RFD 0-100 ms (N/s)",
	MetricRFD0To200:        "RFD 0-200 ms (N/s)",
	MetricImpulse0To200:    "Impulse 0-200 ms (N.s)",
	MetricNetImpulse0To200: "Net Impulse 0-200 ms (N.s)",
}

// All playing levels supported.
const (
	HighSchoolLevel PlayingLevel = "High School"
	CollegeLevel    PlayingLevel = "College"
	ProLevel        PlayingLevel = "Pro"
	AllLevels       PlayingLevel = "All" // Pool every level into one fit
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All run-tracking backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ReportLevels returns the population groups that transfer reports iterate
// over, in report order.
var ReportLevels = []PlayingLevel{HighSchoolLevel, CollegeLevel, ProLevel}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidPlayingLevels lists all valid playing level selections.
var ValidPlayingLevels = map[PlayingLevel]struct{}{
	HighSchoolLevel: {},
	CollegeLevel:    {},
	ProLevel:        {},
	AllLevels:       {},
}

// ValidRunBackends lists all valid run-tracking backends.
var ValidRunBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
