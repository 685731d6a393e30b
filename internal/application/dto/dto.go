// Package dto holds the values exchanged between the engine and its callers.
// Every value is a copy; none aliases engine-owned state.
package dto

// NoticeKind classifies a user-facing notice.
type NoticeKind string

const (
	// NoticeDiscovery announces a newly discovered element.
	NoticeDiscovery NoticeKind = "discovery"
	// NoticeCombined reports a combination of already known results.
	NoticeCombined NoticeKind = "combined"
	// NoticeIntegrity reports a recovered data fault.
	NoticeIntegrity NoticeKind = "integrity"
	// NoticePersistence reports a storage problem that did not stop play.
	NoticePersistence NoticeKind = "persistence"
)

// Notice is a message the presentation layer may show.
type Notice struct {
	Kind    NoticeKind `json:"kind" yaml:"kind"`
	Message string     `json:"message" yaml:"message"`
	IsError bool       `json:"is_error,omitempty" yaml:"is_error,omitempty"`
}

// CombineResult is the outcome of combining two elements.
type CombineResult struct {
	Inputs         [2]string `json:"inputs" yaml:"inputs"`
	Result         string    `json:"result" yaml:"result"`
	Glyph          string    `json:"glyph" yaml:"glyph"`
	Tags           []string  `json:"tags" yaml:"tags"`
	Notices        []Notice  `json:"notices,omitempty" yaml:"notices,omitempty"`
	IsNewDiscovery bool      `json:"is_new_discovery" yaml:"is_new_discovery"`
	Generated      bool      `json:"generated" yaml:"generated"`
}

// ElementView describes one element for display.
type ElementView struct {
	Name       string   `json:"name" yaml:"name"`
	Glyph      string   `json:"glyph" yaml:"glyph"`
	Tags       []string `json:"tags" yaml:"tags"`
	Known      bool     `json:"known" yaml:"known"`
	Discovered bool     `json:"discovered" yaml:"discovered"`
}

// RecipeView describes one recipe for display.
type RecipeView struct {
	Key    string `json:"key" yaml:"key"`
	First  string `json:"first" yaml:"first"`
	Second string `json:"second" yaml:"second"`
	Result string `json:"result" yaml:"result"`
}

// WorkspaceInstance is one element placed on the workspace.
type WorkspaceInstance struct {
	ID      string `json:"id" yaml:"id"`
	Element string `json:"element" yaml:"element"`
}

// ListFilter narrows the discovered list.
type ListFilter struct {
	// Query is matched case-insensitively as a substring of the name.
	Query string
}
