package effect

import (
	"encoding/xml"
	"fmt"
)

// Parse parses an effect pack document and returns the parsed pack.
//
// Pack documents may contain multiple top-level <Emitter> elements
// without a root wrapper (the published pack format keeps one emitter
// per section for hand editing). The content is wrapped in a synthetic
// root element before decoding to handle that case.
//
// Example usage:
//
//	pack, err := effect.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Loaded %d emitters\n", len(pack.Emitters))
func Parse(data []byte) (*Pack, error) {
	wrappedXML := fmt.Sprintf("<Pack>%s</Pack>", string(data))

	var pack Pack
	if err := xml.Unmarshal([]byte(wrappedXML), &pack); err != nil {
		return nil, fmt.Errorf("failed to parse effect pack: %w", err)
	}

	if len(pack.Emitters) == 0 {
		return nil, fmt.Errorf("effect pack contains no emitters")
	}

	return &pack, nil
}

// FindEmitter returns the emitter with the given name, or nil if the
// pack has no emitter by that name.
func (p *Pack) FindEmitter(name string) *EmitterConfig {
	for i := range p.Emitters {
		if p.Emitters[i].Name == name {
			return &p.Emitters[i]
		}
	}
	return nil
}
