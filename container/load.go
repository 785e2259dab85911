package container

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/chunkkit/chunk"
)

// profileSpec is the YAML shape of a custom dialect:
//
//	name: sfbk
//	byte_order: little
//	align: 2
//	groups: [RIFF, LIST]
//	magics: [RIFF]
type profileSpec struct {
	Name      string   `yaml:"name"`
	ByteOrder string   `yaml:"byte_order"`
	Align     int      `yaml:"align"`
	Groups    []string `yaml:"groups"`
	Magics    []string `yaml:"magics"`
}

// LoadProfile reads a custom dialect from a YAML file, so proprietary chunk
// formats can be explored without writing Go. Loaded profiles are returned,
// not registered; hand them to Detect, Scan or OpenOptions explicitly.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prof, err := ParseProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return prof, nil
}

// ParseProfile builds a Profile from YAML bytes.
func ParseProfile(raw []byte) (*Profile, error) {
	var spec profileSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if spec.Name == "" {
		return nil, fmt.Errorf("profile: name is required")
	}
	if spec.Align < 0 {
		return nil, fmt.Errorf("profile %s: negative align %d", spec.Name, spec.Align)
	}
	prof := &Profile{Name: spec.Name, Align: spec.Align}
	switch spec.ByteOrder {
	case "", "little":
	case "big":
		prof.BigEndian = true
	default:
		return nil, fmt.Errorf("profile %s: byte order must be \"little\" or \"big\", not %q", spec.Name, spec.ByteOrder)
	}
	for _, s := range spec.Groups {
		tag, err := parseTag(spec.Name, s)
		if err != nil {
			return nil, err
		}
		prof.Groups = append(prof.Groups, tag)
	}
	for _, s := range spec.Magics {
		tag, err := parseTag(spec.Name, s)
		if err != nil {
			return nil, err
		}
		prof.Magics = append(prof.Magics, tag)
	}
	if len(prof.Magics) == 0 {
		return nil, fmt.Errorf("profile %s: at least one magic tag is required", spec.Name)
	}
	return prof, nil
}

// parseTag space-pads short tags, the family convention ("fmt" means
// "fmt ").
func parseTag(profile, s string) (chunk.FourCC, error) {
	if len(s) == 0 || len(s) > 4 {
		return chunk.FourCC{}, fmt.Errorf("profile %s: tag %q must be 1 to 4 characters", profile, s)
	}
	for len(s) < 4 {
		s += " "
	}
	return chunk.MakeFourCC(s), nil
}
