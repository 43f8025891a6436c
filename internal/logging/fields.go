package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldDate       = "date"
	FieldGamePk     = "game_pk"
	FieldState      = "state"
	FieldCount      = "count"
	FieldTitle      = "title"
	FieldDurationMS = "duration_ms"
)
