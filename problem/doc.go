// Package problem reads and writes route-finding problem files.
//
// Two formats are supported. The text format has four case-sensitive
// sections:
//
//	Nodes:
//	1: (4,1)
//	2: (2,2)
//	Edges:
//	(2,1): 4
//	Origin:
//	2
//	Destinations:
//	5; 4
//
// Blank lines and lines starting with '#' are ignored, sections may appear
// in any order, and a section header may carry its first value inline
// ("Origin: 2"). The YAML format carries the same data under the keys
// nodes, edges, origin and destinations.
//
// Load picks the format from the file extension. Parse errors wrap ErrSyntax
// and name the offending line; references to undeclared nodes wrap
// ErrUnknownNode.
package problem
