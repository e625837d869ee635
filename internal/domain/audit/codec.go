package audit

import (
	"encoding/json"
	"fmt"
	"sync"
)

type decoderFunc func(json.RawMessage) (Snapshot, error)

// Codec encodes snapshots for storage and decodes them back to their
// concrete type using the entity tag.
type Codec struct {
	mu       sync.RWMutex
	decoders map[Entity]decoderFunc
}

func NewCodec() *Codec {
	return &Codec{decoders: make(map[Entity]decoderFunc)}
}

// Register binds entity to the snapshot type T.
func Register[T Snapshot](c *Codec, entity Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoders[entity] = func(raw json.RawMessage) (Snapshot, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Encode returns nil for a nil snapshot.
func (c *Codec) Encode(s Snapshot) (json.RawMessage, error) {
	if s == nil {
		return nil, nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode %s snapshot: %w", s.AuditEntity(), err)
	}
	return data, nil
}

func (c *Codec) Decode(entity Entity, raw json.RawMessage) (Snapshot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	c.mu.RLock()
	dec, ok := c.decoders[entity]
	c.mu.RUnlock()
	if !ok {
		return RawSnapshot{Entity: entity, Data: raw}, nil
	}

	s, err := dec(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s snapshot: %w", entity, err)
	}
	return s, nil
}
