package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/roach88/primepair/internal/analysis"
)

// Profile is an analysis configuration loaded from a CUE profile directory.
// Zero-valued / absent fields leave the built-in defaults untouched, so a
// profile only has to state what it changes.
type Profile struct {
	MaxPrime      int64   `json:"maxPrime"`
	Modulus       int64   `json:"modulus"`
	Gaps          []int64 `json:"gaps"`
	Mod6Gaps      []int64 `json:"mod6Gaps"`
	UniversalGaps []int64 `json:"universalGaps"`
}

// Apply overlays the profile onto an analysis set. MaxPrime is resolved by
// the caller (flags beat profile beats default) and is not part of the set.
func (p *Profile) Apply(cfg analysis.Set) analysis.Set {
	if p.Modulus != 0 {
		cfg.Modulus = p.Modulus
	}
	if len(p.Gaps) > 0 {
		cfg.Gaps = p.Gaps
	}
	if len(p.Mod6Gaps) > 0 {
		cfg.Mod6Gaps = p.Mod6Gaps
	}
	if p.UniversalGaps != nil {
		cfg.UniversalGaps = p.UniversalGaps
	}
	return cfg
}

// LoadError represents an error that occurred during profile loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanError   = "E002" // Directory scan error
	ErrCodeNoFiles     = "E003" // No CUE files found
	ErrCodeLoadFailed  = "E004" // CUE load failed
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeBuildFailed = "E006" // CUE build failed

	// Profile validation errors
	ErrCodeProfileMissing = "E101" // No profile struct in CUE files
	ErrCodeBadGap         = "E102" // Gap not a positive even integer
	ErrCodeBadMod6Gap     = "E103" // Mod-6 gap not divisible by 6
	ErrCodeBadModulus     = "E104" // Modulus not positive
	ErrCodeBadBound       = "E105" // Negative max prime
)

// LoadProfile loads an analysis profile from a directory of CUE files.
// The files must unify into a top-level "profile" struct.
func LoadProfile(dir string) (*Profile, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("profile directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing profile directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	profileVal := value.LookupPath(cue.ParsePath("profile"))
	if !profileVal.Exists() {
		return nil, &LoadError{Code: ErrCodeProfileMissing, Message: "no \"profile\" struct found in CUE files"}
	}

	var profile Profile
	if err := profileVal.Decode(&profile); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("decoding profile: %v", err), Pos: profileVal.Pos()}
	}

	if err := validateProfile(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindCUEFiles walks the directory and returns all .cue file paths.
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

// validateProfile rejects profiles the analyses cannot honor.
func validateProfile(p *Profile) error {
	if p.MaxPrime < 0 {
		return &LoadError{Code: ErrCodeBadBound, Message: fmt.Sprintf("maxPrime must be non-negative, got %d", p.MaxPrime)}
	}
	if p.Modulus < 0 {
		return &LoadError{Code: ErrCodeBadModulus, Message: fmt.Sprintf("modulus must be positive, got %d", p.Modulus)}
	}
	for _, gap := range p.Gaps {
		if gap <= 0 || gap%2 != 0 {
			return &LoadError{Code: ErrCodeBadGap, Message: fmt.Sprintf("gap %d must be a positive even integer", gap)}
		}
	}
	for _, gap := range p.Mod6Gaps {
		if gap <= 0 || gap%6 != 0 {
			return &LoadError{Code: ErrCodeBadMod6Gap, Message: fmt.Sprintf("mod-6 gap %d must be a positive multiple of 6", gap)}
		}
	}
	return nil
}
