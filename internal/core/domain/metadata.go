package domain

// Metadata is the tagged-variant view of chain metadata JSON, which has no
// fixed schema. A failed or non-JSON fetch yields an Unresolved value with
// explicit fallback rules instead of a silent coercion.
type Metadata struct {
	Resolved   bool              `json:"resolved"`
	Name       string            `json:"name,omitempty"`
	Image      string            `json:"image,omitempty"`
	Rarity     Rarity            `json:"rarity,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// UnresolvedMetadata is the variant returned when the URI is unreachable or
// the payload cannot be interpreted.
func UnresolvedMetadata() Metadata {
	return Metadata{Resolved: false}
}

// RarityOrDefault returns the resolved rarity, or fallback when the
// metadata is unresolved or carries an unknown rarity.
func (m Metadata) RarityOrDefault(fallback Rarity) Rarity {
	if m.Resolved && m.Rarity.Valid() {
		return m.Rarity
	}
	return fallback
}
