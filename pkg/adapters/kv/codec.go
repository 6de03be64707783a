package kv

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/inkpad/inkpad/pkg/core"
)

// Codec shapes the bytes stored under the notes key. The default is
// JSON; YAML is available for stores meant to be hand-inspected.
type Codec interface {
	Marshal(notes []core.Note) ([]byte, error)
	Unmarshal(data []byte) ([]core.Note, error)
	Name() string
}

// CodecByName resolves a codec from its configuration name.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

// JSONCodec stores the collection as a JSON array with RFC3339
// timestamps.
type JSONCodec struct{}

func (JSONCodec) Marshal(notes []core.Note) ([]byte, error) {
	return json.Marshal(notes)
}

func (JSONCodec) Unmarshal(data []byte) ([]core.Note, error) {
	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid notes payload: %w", err)
	}
	return notes, nil
}

func (JSONCodec) Name() string { return "json" }

// YAMLCodec stores the collection as a YAML document.
type YAMLCodec struct{}

func (YAMLCodec) Marshal(notes []core.Note) ([]byte, error) {
	return yaml.Marshal(notes)
}

func (YAMLCodec) Unmarshal(data []byte) ([]core.Note, error) {
	var notes []core.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid notes payload: %w", err)
	}
	return notes, nil
}

func (YAMLCodec) Name() string { return "yaml" }
