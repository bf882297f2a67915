package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
)

// Keys understood by ImportProperties.
const (
	PropertyName            = "flip.profile.name"
	PropertyCharSeparator   = "flip.char.separator"
	PropertyWordSeparator   = "flip.word.separator"
	PropertyInputSeparator  = "flip.input.separator"
	PropertyOutputSeparator = "flip.output.separator"
	PropertySkipUnencodable = "flip.skip.unencodable"
	PropertyLenient         = "flip.lenient"
)

// ImportProperties reads a profile from a Java style properties file. The
// profile is named after flip.profile.name, or the file name without its
// extension when that key is missing.
func ImportProperties(path string) (*Profile, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	name := p.GetString(PropertyName, "")
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if name == "" {
		return nil, fmt.Errorf("could not determine profile name for %v", path)
	}

	var found bool
	for _, key := range p.Keys() {
		if strings.HasPrefix(key, "flip.") {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("no flip.* properties in %v", path)
	}

	skip, err := parseBool(p, PropertySkipUnencodable)
	if err != nil {
		return nil, err
	}
	lenient, err := parseBool(p, PropertyLenient)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Name:            name,
		CharSeparator:   p.GetString(PropertyCharSeparator, ""),
		WordSeparator:   p.GetString(PropertyWordSeparator, ""),
		InputSeparator:  p.GetString(PropertyInputSeparator, ""),
		OutputSeparator: p.GetString(PropertyOutputSeparator, ""),
		SkipUnencodable: skip,
		Lenient:         lenient,
	}, nil
}

func parseBool(p *properties.Properties, key string) (bool, error) {
	v, ok := p.Get(key)
	if !ok {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value %q for %v", v, key)
	}
}
