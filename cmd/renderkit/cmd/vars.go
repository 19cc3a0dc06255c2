package cmd

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"renderkit/internal/infrastructure/store"
)

const attributesTable = "attributes"

// loadVars stores the values of a TOML document in st. Top-level keys are
// values, the attributes table holds attributes and the other tables are
// named after the differentiator of their values.
func loadVars(st *store.MemoryStore, data []byte) error {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("variables TOML invalides : %w", err)
	}
	for key, raw := range doc {
		table, ok := raw.(map[string]any)
		if !ok {
			st.SetValue(key, "", fmt.Sprint(raw))
			continue
		}
		for id, v := range table {
			if key == attributesTable {
				st.SetAttribute(id, fmt.Sprint(v))
			} else {
				st.SetValue(id, key, fmt.Sprint(v))
			}
		}
	}
	return nil
}
