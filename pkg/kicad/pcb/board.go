package pcb

// NetPad is a pad together with the reference of its footprint.
type NetPad struct {
	Reference string
	Pad       *Pad
}

// Name returns KiCad's "<ref>-<pad>" pin name.
func (p NetPad) Name() string {
	return p.Reference + "-" + p.Pad.Number
}

// GetNetPads returns all pads connected to a net, in board order.
func (b *Board) GetNetPads(netName string) []NetPad {
	var pads []NetPad
	for i := range b.Footprints {
		fp := &b.Footprints[i]
		for j := range fp.Pads {
			pad := &fp.Pads[j]
			if pad.Net != nil && pad.Net.Name == netName {
				pads = append(pads, NetPad{Reference: fp.Reference, Pad: pad})
			}
		}
	}
	return pads
}

// GetAllNetNames returns the names of all named nets in file order.
func (b *Board) GetAllNetNames() []string {
	names := make([]string, 0, len(b.Nets))
	for _, net := range b.Nets {
		if net.Name == "" {
			continue
		}
		names = append(names, net.Name)
	}
	return names
}

// FindFootprints returns every footprint with the given reference.
func (b *Board) FindFootprints(ref string) []*Footprint {
	var out []*Footprint
	for i := range b.Footprints {
		if b.Footprints[i].Reference == ref {
			out = append(out, &b.Footprints[i])
		}
	}
	return out
}

// AssignNetClasses sets Net.Class for every net named in classes (net name to
// class name). Pads share Net pointers with the board, so they see the change.
func (b *Board) AssignNetClasses(classes map[string]string) {
	for i := range b.Nets {
		if class, ok := classes[b.Nets[i].Name]; ok {
			b.Nets[i].Class = class
		}
	}
}
