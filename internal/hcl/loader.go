package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/bikeshare/internal/config"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	dataDir string
}

// NewLoader creates a new HCL city table loader. dataDir is exposed to
// expressions as the `data_dir` variable.
func NewLoader(dataDir string) *Loader {
	if dataDir == "" {
		dataDir = "."
	}
	return &Loader{dataDir: dataDir}
}

// fileRoot is the top-level schema of a city table file.
type fileRoot struct {
	Cities []*cityBlock `hcl:"city,block"`
}

// cityBlock is the raw decoded form of a `city` block.
type cityBlock struct {
	Name       string `hcl:"name,label"`
	File       string `hcl:"file"`
	TimeLayout string `hcl:"time_layout,optional"`
}

// Load reads every .hcl file found under paths. Files are processed in the
// order given; directories are walked. When paths yield no files the
// built-in table is returned.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths), "data_dir", l.dataDir)

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.dataDir)
	model := &config.Model{}

	if len(files) == 0 {
		file, diags := hclsyntax.ParseConfig([]byte(builtinCities), builtinFilename, hcl.InitialPos)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse built-in city table: %w", diags)
		}
		if err := l.decodeInto(model, file.Body, evalCtx, builtinFilename); err != nil {
			return nil, err
		}
		logger.Debug("Using built-in city table.", "cities", len(model.Cities))
	}

	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		if err := l.decodeInto(model, file.Body, evalCtx, path); err != nil {
			return nil, err
		}
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid city table: %w", err)
	}

	logger.Debug("HCL loading complete.", "cities", model.CityNames())
	return model, nil
}

// decodeInto decodes one file body and appends its cities to model.
func (l *Loader) decodeInto(model *config.Model, body hcl.Body, evalCtx *hcl.EvalContext, filename string) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, evalCtx, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	for _, block := range root.Cities {
		model.Cities = append(model.Cities, translateCity(block))
	}
	return nil
}

// translateCity converts a decoded block into the format-agnostic model.
func translateCity(block *cityBlock) *config.City {
	layout := block.TimeLayout
	if layout == "" {
		layout = config.DefaultTimeLayout
	}
	return &config.City{
		Name:       config.NormalizeName(block.Name),
		File:       filepath.Clean(block.File),
		TimeLayout: layout,
	}
}

// findAllHCLFiles expands paths into a flat, de-duplicated list of .hcl files.
// An explicitly named path that does not exist is an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing config path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("error walking config directory %s: %w", path, err)
			}
			for _, f := range found {
				add(f)
			}
			continue
		}
		if filepath.Ext(path) != ".hcl" {
			return nil, fmt.Errorf("config file %s must have the .hcl extension", path)
		}
		add(path)
	}
	return allFiles, nil
}
