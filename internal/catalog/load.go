package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
)

//go:embed schema.cue
var schemaSrc string

// LoadResult describes a loaded catalog directory.
type LoadResult struct {
	Catalog   *Catalog
	FileCount int
}

// LoadDir loads every .cue file in dir as one CUE instance and converts the
// interval entries. All entry errors are collected; a directory or build
// failure is returned alone. The returned catalog holds every entry that
// converted cleanly, even when errs is non-empty.
func LoadDir(dir string) (*LoadResult, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	files, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(files) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Validate(); err != nil {
		return nil, []error{fromCUEError(ErrCodeBuildFailed, "", err)}
	}

	cat, errs := Extract(value)
	return &LoadResult{Catalog: cat, FileCount: len(files)}, errs
}

// LoadString compiles a single CUE source. filename is used in positions.
func LoadString(filename, src string) (*Catalog, []error) {
	ctx := cuecontext.New()
	value := ctx.CompileString(src, cue.Filename(filename))
	if err := value.Validate(); err != nil {
		return nil, []error{fromCUEError(ErrCodeBuildFailed, "", err)}
	}
	return Extract(value)
}

// Extract converts the interval field of an already built CUE value.
// A value without an interval field yields an empty catalog.
func Extract(value cue.Value) (*Catalog, []error) {
	cat := New()

	schema := value.Context().CompileString(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return cat, []error{fromCUEError(ErrCodeGeneric, "", err)}
	}
	def := schema.LookupPath(cue.ParsePath("#Interval"))

	intervals := value.LookupPath(cue.ParsePath("interval"))
	if !intervals.Exists() {
		return cat, nil
	}
	iter, err := intervals.Fields()
	if err != nil {
		return cat, []error{fromCUEError(ErrCodeSchema, "", err)}
	}

	var errs []error
	for iter.Next() {
		name := iter.Label()
		v := iter.Value()

		if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
			le := fromCUEError(ErrCodeSchema, name, err)
			if !le.Pos.IsValid() {
				le.Pos = v.Pos()
			}
			errs = append(errs, le)
			continue
		}

		d, err := defFromCUE(v)
		if err != nil {
			errs = append(errs, withPos(err, name, v))
			continue
		}
		interval, err := d.Interval()
		if err != nil {
			errs = append(errs, withPos(err, name, v))
			continue
		}
		if err := cat.Add(name, interval); err != nil {
			errs = append(errs, withPos(err, name, v))
		}
	}
	return cat, errs
}

// defFromCUE reads the shape fields of a schema-valid entry.
func defFromCUE(v cue.Value) (Def, error) {
	var d Def
	var err error

	if f := v.LookupPath(cue.ParsePath("lo")); f.Exists() {
		if d.Lo, err = cueAngle(f); err != nil {
			return Def{}, err
		}
	}
	if f := v.LookupPath(cue.ParsePath("hi")); f.Exists() {
		if d.Hi, err = cueAngle(f); err != nil {
			return Def{}, err
		}
	}
	if f := v.LookupPath(cue.ParsePath("point")); f.Exists() {
		if d.Point, err = cueAngle(f); err != nil {
			return Def{}, err
		}
	}
	if f := v.LookupPath(cue.ParsePath("points")); f.Exists() {
		list, err := f.List()
		if err != nil {
			return Def{}, err
		}
		d.Points = []any{}
		for list.Next() {
			a, err := cueAngle(list.Value())
			if err != nil {
				return Def{}, err
			}
			d.Points = append(d.Points, a)
		}
	}
	if f := v.LookupPath(cue.ParsePath("empty")); f.Exists() {
		if d.Empty, err = f.Bool(); err != nil {
			return Def{}, err
		}
	}
	if f := v.LookupPath(cue.ParsePath("full")); f.Exists() {
		if d.Full, err = f.Bool(); err != nil {
			return Def{}, err
		}
	}
	return d, nil
}

// cueAngle returns a float64 for numbers and the raw string otherwise.
func cueAngle(v cue.Value) (any, error) {
	switch v.Kind() {
	case cue.IntKind, cue.FloatKind, cue.NumberKind:
		return v.Float64()
	case cue.StringKind:
		return v.String()
	default:
		return nil, &LoadError{Code: ErrCodeBadAngle, Message: fmt.Sprintf("angle must be a number or string, got %v", v.Kind())}
	}
}

// withPos attaches the entry name and CUE position to err.
func withPos(err error, name string, v cue.Value) error {
	var le *LoadError
	if errors.As(err, &le) {
		out := *le
		out.Name = name
		if !out.Pos.IsValid() {
			out.Pos = v.Pos()
		}
		return &out
	}
	return fromCUEError(ErrCodeGeneric, name, err)
}

// fromCUEError converts a CUE error, keeping the first position it carries.
func fromCUEError(code, name string, err error) *LoadError {
	le := &LoadError{Code: code, Name: name, Message: err.Error()}
	if errs := cueerrors.Errors(err); len(errs) > 0 {
		le.Message = errs[0].Error()
		if positions := cueerrors.Positions(errs[0]); len(positions) > 0 {
			le.Pos = positions[0]
		}
	}
	return le
}

// FindCUEFiles walks dir and returns every .cue file path.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
