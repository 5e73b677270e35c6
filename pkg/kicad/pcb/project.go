package pcb

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Project is the part of a KiCad project file (.kicad_pro) that assigns nets
// to net classes. KiCad 7 and later keep classes here instead of the board.
type Project struct {
	NetSettings struct {
		Classes []struct {
			Name string   `json:"name"`
			Nets []string `json:"nets"` // KiCad 6
		} `json:"classes"`
		Assignments map[string]json.RawMessage `json:"netclass_assignments"`
		Patterns    []struct {
			NetClass string `json:"netclass"`
			Pattern  string `json:"pattern"`
		} `json:"netclass_patterns"`
	} `json:"net_settings"`
}

// ProjectPath returns the project file that sits next to a board file.
func ProjectPath(boardPath string) string {
	return strings.TrimSuffix(boardPath, filepath.Ext(boardPath)) + ".kicad_pro"
}

// LoadProject reads a .kicad_pro file.
func LoadProject(filename string) (*Project, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read project: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project %s: %w", filename, err)
	}
	return &p, nil
}

// NetClasses resolves the class of every named net. Explicit assignments win
// over patterns, and patterns over KiCad 6 per-class net lists. Nets without
// a class are left out.
func (p *Project) NetClasses(netNames []string) map[string]string {
	classes := make(map[string]string)
	for _, c := range p.NetSettings.Classes {
		for _, n := range c.Nets {
			classes[n] = c.Name
		}
	}

	for _, net := range netNames {
		for _, pat := range p.NetSettings.Patterns {
			if ok, err := path.Match(pat.Pattern, net); err == nil && ok {
				classes[net] = pat.NetClass
				break
			}
		}
	}

	for net, raw := range p.NetSettings.Assignments {
		if class := assignedClass(raw); class != "" {
			classes[net] = class
		}
	}
	return classes
}

// assignedClass accepts both "Power" and ["Power", ...] assignment values.
func assignedClass(raw json.RawMessage) string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil && len(many) > 0 {
		return many[0]
	}
	return ""
}
