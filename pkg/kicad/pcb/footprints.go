package pcb

import (
	"fmt"
	"math"
	"strings"

	"github.com/OpenTraceLab/OpenTraceProbe/pkg/kicad/sexp/kicadsexp"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/testpoint"
)

// padProperties maps the file's (property ...) keyword to KiCad's PAD_PROP value.
var padProperties = map[string]testpoint.PadProperty{
	"pad_prop_bga":           testpoint.PropertyBGA,
	"pad_prop_fiducial_glob": testpoint.PropertyFiducialGlobal,
	"pad_prop_fiducial_loc":  testpoint.PropertyFiducialLocal,
	"pad_prop_testpoint":     testpoint.PropertyTestPoint,
	"pad_prop_heatsink":      testpoint.PropertyHeatsink,
	"pad_prop_castellated":   testpoint.PropertyCastellated,
}

// parsePad extracts a pad definition from a footprint
// Expected format: (pad "number" type shape (at x y [angle]) (size w h) (layers ...) (net n "name") ...)
func parsePad(node kicadsexp.Sexp, fp *Footprint, netMap *NetMap, layerMap *LayerMap) (*Pad, error) {
	pad := &Pad{}

	number, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad number: %w", err)
	}
	pad.Number = number

	padType, err := getString(node, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad type: %w", err)
	}
	pad.Type = padType

	shape, err := getString(node, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad shape: %w", err)
	}
	pad.Shape = shape

	atNode, found := findNode(node, "at")
	if !found {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	pos, err := getPositionAngle(atNode)
	if err != nil {
		return nil, err
	}
	pad.Position = pos
	pad.Center = boardPosition(fp.Position, pos.Position)

	sizeNode, found := findNode(node, "size")
	if !found {
		return nil, fmt.Errorf("missing required 'size' field")
	}
	width, err := getFloat(sizeNode, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad width: %w", err)
	}
	height, err := getFloat(sizeNode, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pad height: %w", err)
	}
	pad.Size = Size{Width: width, Height: height}

	// (drill 1.0) or (drill oval 1.0 2.0)
	if drillNode, found := findNode(node, "drill"); found {
		if drill, err := getFloat(drillNode, 1); err == nil {
			pad.Drill = drill
		} else if drill, err := getFloat(drillNode, 2); err == nil {
			pad.Drill = drill
		}
	}

	layersNode, found := findNode(node, "layers")
	if !found {
		return nil, fmt.Errorf("missing required 'layers' field")
	}
	for _, item := range getListItems(layersNode) {
		if sym, ok := item.(kicadsexp.Symbol); ok && sym != "" {
			pad.Layers = append(pad.Layers, string(sym))
		}
	}
	pad.Layer = principalLayer(pad.Layers, fp, layerMap)

	// (net 1 "GND") up to KiCad 8, (net "GND") from KiCad 9
	if netNode, found := findNode(node, "net"); found {
		if netNum, err := getInt(netNode, 1); err == nil {
			if net, ok := netMap.GetByNumber(netNum); ok && !netMap.IsUnconnected(netNum) {
				pad.Net = net
			}
		} else if name, err := getString(netNode, 1); err == nil {
			if net, ok := netMap.GetByName(name); ok {
				pad.Net = net
			}
		}
	}

	if propNode, found := findNode(node, "property"); found {
		if prop, err := getString(propNode, 1); err == nil {
			pad.Property = padProperties[prop]
		}
	}

	return pad, nil
}

// boardPosition converts a footprint-relative pad offset to an absolute board
// point. KiCad stores the offset in the footprint's unrotated frame; positive
// angles rotate counterclockwise as seen on screen, where y points down.
func boardPosition(anchor PositionAngle, offset Position) testpoint.Point {
	rad := anchor.Angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	x := anchor.X + offset.X*cos + offset.Y*sin
	y := anchor.Y - offset.X*sin + offset.Y*cos
	return testpoint.PointFromMM(x, y)
}

// principalLayer picks the copper layer KiCad reports for a pad: the outer
// copper layer on the footprint's side for through-hole pads, otherwise the
// first copper layer listed.
func principalLayer(layers LayerSet, fp *Footprint, layerMap *LayerMap) int {
	if layers.Contains("*.Cu") {
		if fp.Side() != 0 {
			n, _ := layerMap.Number("B.Cu")
			return n
		}
		n, _ := layerMap.Number("F.Cu")
		return n
	}
	for _, l := range layers {
		if !strings.HasSuffix(l, ".Cu") {
			continue
		}
		if n, ok := layerMap.Number(l); ok {
			return n
		}
	}
	for _, l := range layers {
		if n, ok := layerMap.Number(l); ok {
			return n
		}
	}
	n, _ := layerMap.Number(fp.Layer)
	return n
}

// parseFootprint extracts a footprint (component) definition
// Expected format: (footprint "library:name" (layer "F.Cu") (at x y [angle]) ...)
func parseFootprint(node kicadsexp.Sexp, netMap *NetMap, layerMap *LayerMap) (*Footprint, error) {
	footprint := &Footprint{}

	fpName, err := getString(node, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse footprint name: %w", err)
	}
	// "Resistor_SMD:R_0603_1608Metric"
	if lib, name, ok := strings.Cut(fpName, ":"); ok && lib != "" {
		footprint.Library = lib
		footprint.Name = name
	} else {
		footprint.Name = fpName
	}

	layerNode, found := findNode(node, "layer")
	if !found {
		return nil, fmt.Errorf("missing required 'layer' field")
	}
	layer, err := getString(layerNode, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to parse layer: %w", err)
	}
	footprint.Layer = layer

	atNode, found := findNode(node, "at")
	if !found {
		return nil, fmt.Errorf("missing required 'at' position")
	}
	pos, err := getPositionAngle(atNode)
	if err != nil {
		return nil, err
	}
	footprint.Position = pos

	// KiCad 8+: (property "Reference" "R1" ...)
	for _, propNode := range findAllNodes(node, "property") {
		propName, err := getString(propNode, 1)
		if err != nil {
			continue
		}
		propValue, err := getString(propNode, 2)
		if err != nil {
			continue
		}
		switch propName {
		case "Reference":
			footprint.Reference = propValue
		case "Value":
			footprint.Value = propValue
		}
	}

	// KiCad 6/7: (fp_text reference "R1" ...)
	for _, textNode := range findAllNodes(node, "fp_text") {
		kind, err := getString(textNode, 1)
		if err != nil {
			continue
		}
		text, err := getString(textNode, 2)
		if err != nil {
			continue
		}
		switch {
		case kind == "reference" && footprint.Reference == "":
			footprint.Reference = text
		case kind == "value" && footprint.Value == "":
			footprint.Value = text
		}
	}

	for i, padNode := range findAllNodes(node, "pad") {
		pad, err := parsePad(padNode, footprint, netMap, layerMap)
		if err != nil {
			return nil, fmt.Errorf("pad %d: %w", i, err)
		}
		footprint.Pads = append(footprint.Pads, *pad)
	}

	return footprint, nil
}

// parseFootprints extracts all footprint definitions from the root node.
// A footprint that fails to parse fails the board.
func parseFootprints(root kicadsexp.Sexp, netMap *NetMap, layerMap *LayerMap) ([]Footprint, error) {
	var footprints []Footprint
	for i, fpNode := range findAllNodes(root, "footprint") {
		footprint, err := parseFootprint(fpNode, netMap, layerMap)
		if err != nil {
			return nil, fmt.Errorf("footprint %d: %w", i, err)
		}
		footprints = append(footprints, *footprint)
	}
	return footprints, nil
}
