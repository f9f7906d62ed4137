// Package mapping computes the (source, destination, display name) triples
// for a collection.
//
// Each naming strategy is one branch of Builder.Build:
//
//	prefixed             agents/dLabs-reviewer.md
//	category-flatten     agents/frontend-react.md   (categories/01-frontend/react.md)
//	tool-workflow-split  commands/tools/git/status.md, commands/workflows/ci.md,
//	                     commands/wshobson-readme-less.md
//
// Mappings are built fresh on every call and every destination is checked
// against the path policy before it is returned.
package mapping
