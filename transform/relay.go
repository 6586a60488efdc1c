package transform

import (
	"github.com/lixenwraith/kinema/input"
	"github.com/lixenwraith/kinema/parameter"
)

type relayState struct {
	source  input.Source
	mapping input.Mapping
}

// NewInputRelay returns the enrichment transformer: it produces no forces,
// it maps the live raw source through its mapping and merges the result
// into the frame's action set. The chain runs relays as a stage before any
// force transformer, so priority only orders relays among themselves.
func NewInputRelay(source input.Source, mapping input.Mapping) *Transformer {
	return &Transformer{
		kind:     KindInputRelay,
		Priority: parameter.PriorityInputRelay,
		Enabled:  true,
		relay: &relayState{
			source:  source,
			mapping: mapping.Clone(),
		},
	}
}

func (t *Transformer) relayTransform(in *Input) Output {
	st := t.relay
	if st == nil || st.source == nil {
		return Output{}
	}

	mapped := input.Map(st.source.Snapshot(), st.mapping)
	if len(mapped) == 0 {
		return Output{}
	}

	if in.Actions == nil {
		in.Actions = make(input.Actions, len(mapped))
	}
	for name, v := range mapped {
		in.Actions[name] = v
	}
	return Output{}
}
