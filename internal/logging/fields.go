// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run fields.
	FieldJobs     = "jobs"
	FieldFormat   = "format"
	FieldRules    = "rules"
	FieldDebounce = "debounce"
	FieldEditor   = "editor"
	FieldLine     = "line"
	FieldLanguage = "language"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldFindingsTotal   = "findings_total"
	FieldRuleFailures    = "rule_failures"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule     = "rule"
	FieldName     = "name"
	FieldSeverity = "severity"
	FieldLabel    = "label"
	FieldTags     = "tags"
	FieldEnabled  = "enabled"
)
