package domain

// Variant is one concrete build configuration the host materializes for a
// module, e.g. {Name: "debug", BuildType: "debug"}. The core holds a
// read-only view; variants are owned by the host's variant matrix.
type Variant struct {
	Name      string `json:"name"`
	BuildType string `json:"build_type"`
}
