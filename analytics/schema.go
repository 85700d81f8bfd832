// Package analytics turns raw spreadsheet rows into chart-ready aggregates:
// KPI sums, merged category distributions, a daily registration series and the
// registration pace forecast. Every function is pure and never fails; malformed
// cells degrade to "no contribution" so one bad row cannot blank a chart.
package analytics

// Column names match the sheet header row exactly (case- and whitespace-sensitive).
const (
	ColInitiativeName     = "Initiative Name"
	ColRegistrationCount  = "Registration Count"
	ColSubmissionCount    = "Submission Count"
	ColTeamsCount         = "Teams Count"
	ColPageVisits         = "Page Visits"
	ColGender             = "Gender Distribution"
	ColCountry            = "Country"
	ColState              = "State"
	ColCity               = "City"
	ColOccupation         = "Occupation"
	ColDailyRegistrations = "Daily Registrations"
	ColRegistrationStart  = "Registration Start Date"
	ColRegistrationEnd    = "Registration End Date"
)

// FieldRole describes how the dashboard consumes a sheet column.
type FieldRole string

const (
	RoleName         FieldRole = "name"
	RoleKPI          FieldRole = "kpi"
	RoleDistribution FieldRole = "distribution"
	RoleDailySeries  FieldRole = "daily_series"
	RoleWindowStart  FieldRole = "window_start"
	RoleWindowEnd    FieldRole = "window_end"
)

// Field binds a sheet column name to its semantic role.
type Field struct {
	Name string
	Role FieldRole
}

// Schema is the single place that couples the dashboard to sheet column names.
var Schema = []Field{
	{ColInitiativeName, RoleName},
	{ColRegistrationCount, RoleKPI},
	{ColSubmissionCount, RoleKPI},
	{ColTeamsCount, RoleKPI},
	{ColPageVisits, RoleKPI},
	{ColGender, RoleDistribution},
	{ColOccupation, RoleDistribution},
	{ColCountry, RoleDistribution},
	{ColState, RoleDistribution},
	{ColCity, RoleDistribution},
	{ColDailyRegistrations, RoleDailySeries},
	{ColRegistrationStart, RoleWindowStart},
	{ColRegistrationEnd, RoleWindowEnd},
}

// ColumnsWithRole returns the schema columns carrying the given role, in schema order.
func ColumnsWithRole(role FieldRole) []string {
	columns := make([]string, 0, len(Schema))
	for _, f := range Schema {
		if f.Role == role {
			columns = append(columns, f.Name)
		}
	}
	return columns
}

// KPIColumns are the numeric columns summed into the dashboard KPI cards.
var KPIColumns = ColumnsWithRole(RoleKPI)

// DistributionColumns are the JSON-encoded breakdown columns (pie/bar charts).
var DistributionColumns = ColumnsWithRole(RoleDistribution)

// EventRecord is one sheet row. Cell values are whatever the row source produced;
// the parser owns all type coercion.
type EventRecord map[string]any
