package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stackb/groovy-resolve/pkg/types"
)

// ClassSpec is the yaml form of a class hierarchy entry.
type ClassSpec struct {
	Name       string   `yaml:"name"`
	TypeParams []string `yaml:"type_params,omitempty"`
	Supers     []string `yaml:"supers,omitempty"`
}

// ReadHierarchy reads a yaml list of classes into a class hierarchy.
func ReadHierarchy(filename string) (*types.ClassHierarchy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return ParseHierarchy(data)
}

// ParseHierarchy parses a yaml list of classes into a class hierarchy.
func ParseHierarchy(data []byte) (*types.ClassHierarchy, error) {
	var classes []ClassSpec
	if err := yaml.Unmarshal(data, &classes); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	h := types.NewClassHierarchy()
	for _, class := range classes {
		info := &types.ClassInfo{
			Name:       class.Name,
			TypeParams: class.TypeParams,
		}
		for _, super := range class.Supers {
			info.Supers = append(info.Supers, types.ParseType(super))
		}
		if err := h.PutClass(info); err != nil {
			return nil, err
		}
	}
	return h, nil
}
