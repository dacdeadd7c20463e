package dto

// RollupNode is one node of a period rollup tree: a named group with its
// recursive total, or a single amount when Children is empty and Name is "".
type RollupNode struct {
	Name     string       `json:"name,omitempty"`
	Total    string       `json:"total"`
	Children []RollupNode `json:"children,omitempty"`
}

type RollupResponse struct {
	Period string     `json:"period"`
	Rollup RollupNode `json:"rollup"`
}
