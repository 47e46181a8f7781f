package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/arcs/internal/catalog"
)

// Error codes for CLI-level failures. Catalog errors keep their own codes.
const (
	ErrCodeGeneric  = "E001" // Generic/unknown error
	ErrCodeUsage    = "E101" // Malformed command-line argument
	ErrCodeDatabase = "E102" // Database open or query failure
	ErrCodeTestFail = "E_TEST_FAILED"
	ErrCodeReplay   = "E_REPLAY"
)

// loadCatalog loads the catalog in dir. An empty dir yields an empty
// catalog. Any load error fails the command, since a partial catalog would
// silently change which names resolve.
func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return catalog.New(), nil
	}
	res, errs := catalog.LoadDir(dir)
	if len(errs) > 0 {
		return nil, WrapExitError(ExitCommandError,
			fmt.Sprintf("failed to load catalog %s (%d error(s))", dir, len(errs)),
			errors.Join(errs...))
	}
	return res.Catalog, nil
}
