// File: pkg/retrieve/tree.go
package retrieve

import (
	"path/filepath"
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
}

func (n *treeNode) child(name string) *treeNode {
	if n.children == nil {
		n.children = make(map[string]*treeNode)
	}
	c, ok := n.children[name]
	if !ok {
		c = &treeNode{name: name}
		n.children[name] = c
	}
	return c
}

func (n *treeNode) isDir() bool {
	return n.children != nil
}

// RenderTree draws the given files as a tree under root. Directories come
// first, then files, each group sorted case-insensitively.
func RenderTree(root string, files []string) string {
	top := &treeNode{}
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			rel = f
		}
		node := top
		for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
			if part == "" || part == "." {
				continue
			}
			node = node.child(part)
		}
	}

	var b strings.Builder
	b.WriteString(filepath.ToSlash(filepath.Clean(root)))
	b.WriteString("/\n")
	writeTree(&b, top, "")
	return b.String()
}

func writeTree(b *strings.Builder, n *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		entries = append(entries, c)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir() != entries[j].isDir() {
			return entries[i].isDir()
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	for i, e := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}
		b.WriteString(prefix + connector + e.name)
		if e.isDir() {
			b.WriteString("/\n")
			writeTree(b, e, prefix+extension)
			continue
		}
		b.WriteString("\n")
	}
}
