package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/arcs/internal/catalog"
)

// ValidationError is one catalog problem in reportable form.
type ValidationError struct {
	Code    string `json:"code"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool              `json:"valid"`
	Files     int               `json:"files"`
	Intervals []string          `json:"intervals,omitempty"`
	Errors    []ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog-dir>",
		Short: "Validate an interval catalog",
		Long: `Load a directory of CUE interval definitions, check every entry
against the interval schema and report all problems with their positions.

Exit codes:
  0 - Catalog valid
  1 - One or more entries are invalid
  2 - Command error (directory missing, no CUE files, CUE does not build)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	res, errs := catalog.LoadDir(dir)
	if res == nil {
		// Directory-level failure: nothing was loaded.
		le := toValidationError(errs[0])
		_ = formatter.Error(le.Code, errs[0].Error(), nil)
		return NewExitError(ExitCommandError, errs[0].Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", res.FileCount, dir)

	result := ValidationResult{
		Valid:     len(errs) == 0,
		Files:     res.FileCount,
		Intervals: res.Catalog.Names(),
	}
	for _, err := range errs {
		result.Errors = append(result.Errors, toValidationError(err))
	}

	if result.Valid {
		if opts.Format == formatJSON {
			return formatter.Success(result)
		}
		formatter.Textf("✓ Catalog valid: %d interval(s) in %d file(s)", len(result.Intervals), result.Files)
		return nil
	}
	return outputValidationErrors(formatter, result)
}

func toValidationError(err error) ValidationError {
	var le *catalog.LoadError
	if !errors.As(err, &le) {
		return ValidationError{Code: ErrCodeGeneric, Message: err.Error()}
	}
	ve := ValidationError{Code: le.Code, Name: le.Name, Message: le.Message}
	if le.Pos.IsValid() {
		ve.File = le.Pos.Filename()
		ve.Line = le.Pos.Line()
	}
	return ve
}

// outputValidationErrors outputs every validation error.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	first := result.Errors[0]
	if formatter.Format == formatJSON {
		if err := formatter.JSON(CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    first.Code,
				Message: first.Message,
			},
		}); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
	}

	formatter.Textf("✗ Validation failed")
	formatter.Textf("")
	for _, e := range result.Errors {
		if e.Line > 0 {
			formatter.Textf("%s:%d", e.File, e.Line)
		}
		if e.Name != "" {
			formatter.Textf("  %s: interval.%s: %s", e.Code, e.Name, e.Message)
		} else {
			formatter.Textf("  %s: %s", e.Code, e.Message)
		}
		formatter.Textf("")
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(result.Errors)))
}
