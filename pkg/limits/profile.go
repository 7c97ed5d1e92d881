package limits

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// profileSpec is the YAML shape of a single named validation profile.
type profileSpec struct {
	MaxStringLength *int     `yaml:"max_string_length"`
	MaxArrayLength  *int     `yaml:"max_array_length"`
	MaxObjectDepth  *int     `yaml:"max_object_depth"`
	MaxFileSize     *int64   `yaml:"max_file_size"`
	AllowedTypes    []string `yaml:"allowed_types"`
}

// ParseProfiles parses named validation profiles from YAML, each merged
// over the documented defaults. Profiles let operators declare per-tenant
// bounds without code changes:
//
//	free:
//	  max_array_length: 200
//	  max_file_size: 1048576
//	enterprise:
//	  max_array_length: 5000
func ParseProfiles(data []byte) (map[string]Limits, error) {
	var specs map[string]profileSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	profiles := make(map[string]Limits, len(specs))
	for name, spec := range specs {
		p := Partial{
			MaxStringLength: spec.MaxStringLength,
			MaxArrayLength:  spec.MaxArrayLength,
			MaxObjectDepth:  spec.MaxObjectDepth,
			MaxFileSize:     spec.MaxFileSize,
		}
		for _, t := range spec.AllowedTypes {
			p.AllowedTypes = append(p.AllowedTypes, TypeName(t))
		}
		l, err := Default().Merge(p)
		if err != nil {
			return nil, fmt.Errorf("%w: profile %q: %v", ErrInvalidProfile, name, err)
		}
		profiles[name] = l
	}
	return profiles, nil
}
