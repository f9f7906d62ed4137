package types

// Mapping is a single planned symlink.
//
// Source and Destination are always absolute. DisplayName is the label used
// in reports; it differs from the destination base name when the naming
// strategy nests the link (tools/git.md).
type Mapping struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	DisplayName string `json:"displayName"`
}
