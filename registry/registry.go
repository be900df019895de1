// Package registry builds the fixed set of data-driven registries this core
// advertises to clients during Configuration (dimension types, biomes, chat
// types, damage types). Every entry's payload is validated once at startup
// by round-tripping it through the real NBT codec — if it doesn't survive
// encode-then-decode, the server refuses to start rather than hand a client
// a tag it could never have produced itself.
package registry

import (
	"fmt"

	ns "github.com/go-mclib/picocraft/net_structures"
)

// Entry is one named registry entry together with its NBT payload.
type Entry struct {
	ID   string
	Data map[string]any
}

// Registry is one complete named registry (e.g. "minecraft:dimension_type").
type Registry struct {
	ID      string
	Entries []Entry
}

// Set is the full collection of registries this core sends during
// Configuration, in send order.
type Set []Registry

// Build assembles the default registry set for a flat overworld-shaped
// dimension with a fixed sea level, no weather cycle, and constant daylight.
func Build() (Set, error) {
	set := Set{
		{
			ID: "minecraft:dimension_type",
			Entries: []Entry{{
				ID: "minecraft:overworld",
				Data: map[string]any{
					"piglin_safe":            byte(0),
					"has_raids":              byte(0),
					"monster_spawn_light_level": int32(0),
					"monster_spawn_block_light_limit": int32(0),
					"natural":                byte(1),
					"ambient_light":          float32(1.0),
					"fixed_time":             int64(6000),
					"infiniburn":             "#minecraft:infiniburn_overworld",
					"respawn_anchor_works":   byte(0),
					"has_skylight":           byte(1),
					"bed_works":              byte(0),
					"effects":                "minecraft:overworld",
					"min_y":                  int32(-64),
					"height":                 int32(384),
					"logical_height":         int32(384),
					"coordinate_scale":       float64(1.0),
					"ultrawarm":              byte(0),
					"has_ceiling":            byte(0),
				},
			}},
		},
		{
			ID: "minecraft:worldgen/biome",
			Entries: []Entry{{
				ID: "minecraft:plains",
				Data: map[string]any{
					"has_precipitation": byte(0),
					"temperature":       float32(0.8),
					"downfall":          float32(0.4),
					"effects": map[string]any{
						"sky_color":       int32(0x78A7FF),
						"water_color":     int32(0x3F76E4),
						"water_fog_color": int32(0x050533),
						"fog_color":       int32(0xC0D8FF),
					},
				},
			}},
		},
		{
			ID: "minecraft:chat_type",
			Entries: []Entry{{
				ID: "minecraft:chat",
				Data: map[string]any{
					"chat": map[string]any{
						"translation_key": "chat.type.text",
						"parameters":      []any{"sender", "content"},
					},
					"narration": map[string]any{
						"translation_key": "chat.type.text.narrate",
						"parameters":      []any{"sender", "content"},
					},
				},
			}},
		},
		{
			ID: "minecraft:damage_type",
			Entries: []Entry{{
				ID: "minecraft:generic",
				Data: map[string]any{
					"message_id":  "generic",
					"scaling":     "when_caused_by_living_non_player",
					"exhaustion":  float32(0.1),
				},
			}},
		},
	}

	if err := set.validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// validate round-trips every entry's payload through the real NBT codec,
// failing fast if anything in Build's literals can't survive the trip.
func (s Set) validate() error {
	for _, reg := range s {
		for _, entry := range reg.Entries {
			wire := ns.NewWriter()
			if err := (ns.NBT{Data: entry.Data}).Encode(wire); err != nil {
				return fmt.Errorf("registry: encode %s/%s: %w", reg.ID, entry.ID, err)
			}
			if _, err := ns.ReadNBT(ns.NewReader(wire.Bytes())); err != nil {
				return fmt.Errorf("registry: round-trip %s/%s: %w", reg.ID, entry.ID, err)
			}
		}
	}
	return nil
}

// DimensionNames returns the dimension identifiers this registry set
// defines, for LoginPlay's dimension list.
func (s Set) DimensionNames() []ns.Identifier {
	for _, reg := range s {
		if reg.ID != "minecraft:dimension_type" {
			continue
		}
		names := make([]ns.Identifier, len(reg.Entries))
		for i, e := range reg.Entries {
			names[i] = ns.Identifier(e.ID)
		}
		return names
	}
	return nil
}
