package mjml

import "github.com/xlab/treeprint"

// Outline returns the tag tree of n as indented text, without attributes
// or content. Useful when debugging document construction.
//
//	.
//	└── mjml
//	    └── mj-body
//	        └── mj-section
//	            └── mj-column
//	                └── mj-text
func Outline(n Node) string {
	tree := treeprint.New()
	if !isNil(n) {
		addOutline(tree, n)
	}
	return tree.String()
}

func addOutline(tree treeprint.Tree, n Node) {
	kids := childNodes(n)
	if len(kids) == 0 {
		tree.AddNode(n.TagName())
		return
	}
	branch := tree.AddBranch(n.TagName())
	for _, k := range kids {
		addOutline(branch, k)
	}
}

// countNodes returns the number of nodes in the tree rooted at n.
func countNodes(n Node) int {
	total := 1
	for _, k := range childNodes(n) {
		total += countNodes(k)
	}
	return total
}

func childNodes(n Node) []Node {
	p, ok := n.(parent)
	if !ok {
		return nil
	}
	var out []Node
	for _, k := range p.children() {
		if !isNil(k) {
			out = append(out, k)
		}
	}
	return out
}
