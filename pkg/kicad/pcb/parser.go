package pcb

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/kicad/sexp/kicadsexp"
)

// Minimum supported KiCad version (6.0 = 20211014)
const MinSupportedVersion = 20211014

// ParseFile reads and parses a KiCad board file.
func ParseFile(filename string) (*Board, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads and parses a KiCad board.
func Parse(r io.Reader) (*Board, error) {
	sexps, err := kicadsexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}
	if len(sexps) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	root := sexps[0]
	rootName, err := getNodeName(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get root node name: %w", err)
	}
	if rootName != "kicad_pcb" {
		return nil, fmt.Errorf("not a KiCad PCB file: expected 'kicad_pcb', got '%s'", rootName)
	}

	version, generator, err := parseHeader(root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	board := &Board{
		Version:   version,
		Generator: generator,
	}

	if layersNode, found := findNode(root, "layers"); found {
		layers, err := parseLayers(layersNode)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layers section: %w", err)
		}
		board.Layers = layers
	}

	if setupNode, found := findNode(root, "setup"); found {
		setup, err := parseSetup(setupNode)
		if err != nil {
			return nil, fmt.Errorf("failed to parse setup section: %w", err)
		}
		board.Setup = setup
	}

	nets, err := parseNets(root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nets: %w", err)
	}
	board.Nets = nets
	board.AssignNetClasses(parseNetClasses(root))

	footprints, err := parseFootprints(root, NewNetMap(board.Nets), NewLayerMap(board.Layers))
	if err != nil {
		return nil, fmt.Errorf("failed to parse footprints: %w", err)
	}
	board.Footprints = footprints

	return board, nil
}

// parseHeader extracts version and generator information from the root node
// Expected format: (kicad_pcb (version 20221018) (generator pcbnew) ...)
func parseHeader(root kicadsexp.Sexp) (version int, generator string, err error) {
	versionNode, found := findNode(root, "version")
	if !found {
		return 0, "", fmt.Errorf("missing required 'version' field")
	}

	ver, err := getInt(versionNode, 1)
	if err != nil {
		return 0, "", fmt.Errorf("failed to parse version: %w", err)
	}
	if ver < MinSupportedVersion {
		return 0, "", fmt.Errorf("unsupported KiCad version: %d (minimum required: %d / KiCad 6.0)", ver, MinSupportedVersion)
	}

	gen := "unknown"
	if hostNode, found := findNode(root, "host"); found {
		// (host pcbnew "(6.0.0)")
		if toolName, err := getString(hostNode, 1); err == nil {
			gen = toolName
		}
	} else if genNode, found := findNode(root, "generator"); found {
		if generatorName, err := getString(genNode, 1); err == nil {
			gen = generatorName
		}
	}

	return ver, gen, nil
}

// parseLayers extracts layer definitions
// Expected format: (layers (0 "F.Cu" signal) (31 "B.Cu" signal) ...)
func parseLayers(node kicadsexp.Sexp) ([]Layer, error) {
	layerNodes := getListItems(node)
	if len(layerNodes) == 0 {
		return nil, fmt.Errorf("no layers defined")
	}

	var layers []Layer
	for _, layerNode := range layerNodes {
		if layerNode.IsLeaf() {
			continue
		}

		number, err := getInt(layerNode, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layer number: %w", err)
		}
		name, err := getString(layerNode, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse layer name: %w", err)
		}
		layerType, err := getString(layerNode, 2)
		if err != nil {
			layerType = "user"
		}

		layers = append(layers, Layer{Number: number, Name: name, Type: layerType})
	}
	return layers, nil
}

// parseSetup extracts the design settings.
// Expected format: (setup ... (aux_axis_origin 100 100) (grid_origin 10 10))
// KiCad omits aux_axis_origin when it has never been set. The grid origin is
// an editing aid and is not read.
func parseSetup(node kicadsexp.Sexp) (Setup, error) {
	var setup Setup
	if n, found := findNode(node, "aux_axis_origin"); found {
		pos, err := getPositionXY(n)
		if err != nil {
			return Setup{}, fmt.Errorf("failed to parse aux_axis_origin: %w", err)
		}
		setup.AuxAxisOrigin = pos
		setup.HasAuxAxisOrigin = true
	}
	return setup, nil
}

// parseNets extracts net definitions from the root node
// Expected format: (net 0 "") (net 1 "GND") (net 2 "+5V") ...
func parseNets(root kicadsexp.Sexp) ([]Net, error) {
	var nets []Net
	for _, netNode := range findAllNodes(root, "net") {
		number, err := getInt(netNode, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to parse net number: %w", err)
		}
		// net 0 usually has an empty name
		name, _ := getString(netNode, 2)
		nets = append(nets, Net{Number: number, Name: name})
	}
	return nets, nil
}

// parseNetClasses reads KiCad 6 style net class blocks still present in some
// board files. Later versions keep classes in the project file; see
// LoadProjectNetClasses.
// Expected format: (net_class "Power" "desc" (clearance 0.2) (add_net "+5V"))
func parseNetClasses(root kicadsexp.Sexp) map[string]string {
	classes := make(map[string]string)
	for _, classNode := range findAllNodes(root, "net_class") {
		className, err := getString(classNode, 1)
		if err != nil {
			continue
		}
		for _, add := range findAllNodes(classNode, "add_net") {
			if net, err := getString(add, 1); err == nil {
				classes[net] = className
			}
		}
	}
	return classes
}
