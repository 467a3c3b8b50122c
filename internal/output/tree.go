package output

import (
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is the column descriptions are aligned to.
	descriptionColumn = 30
)

// FileEntry is one file in a rendered tree.
type FileEntry struct {
	// Path is slash-separated and relative to the tree root.
	Path string

	// Description is shown dimmed after the name. May be empty.
	Description string
}

type treeNode struct {
	name        string
	description string
	isDir       bool
	children    []*treeNode
}

// RenderFileTree renders files below a root directory named rootName.
// Directories sort before files, then alphabetically.
func RenderFileTree(rootName string, files []FileEntry) string {
	if len(files) == 0 {
		return ""
	}

	root := &treeNode{name: rootName, isDir: true}
	for _, f := range files {
		root.insert(strings.Split(f.Path, "/"), f.Description)
	}
	root.sort()

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(root.name + "/"))
	sb.WriteString("\n")
	for i, child := range root.children {
		child.render(&sb, "", i == len(root.children)-1)
	}
	return sb.String()
}

func (n *treeNode) insert(parts []string, desc string) {
	if len(parts) == 0 {
		return
	}

	var child *treeNode
	for _, c := range n.children {
		if c.name == parts[0] {
			child = c
			break
		}
	}
	if child == nil {
		child = &treeNode{name: parts[0], isDir: len(parts) > 1}
		n.children = append(n.children, child)
	}

	if len(parts) == 1 {
		child.description = desc
		return
	}
	child.insert(parts[1:], desc)
}

func (n *treeNode) sort() {
	sort.Slice(n.children, func(i, j int) bool {
		a, b := n.children[i], n.children[j]
		if a.isDir != b.isDir {
			return a.isDir
		}
		return a.name < b.name
	})
	for _, c := range n.children {
		c.sort()
	}
}

func (n *treeNode) render(sb *strings.Builder, prefix string, last bool) {
	connector := treeEdge
	if last {
		connector = treeLast
	}

	name := n.name
	if n.isDir {
		name += "/"
	}

	line := prefix + connector + name
	if n.description != "" {
		// Column counts runes so box-drawing characters are one cell each.
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + StyleDim.Render(n.description)
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	childPrefix := prefix + treeVert
	if last {
		childPrefix = prefix + treeSpace
	}
	for i, c := range n.children {
		c.render(sb, childPrefix, i == len(n.children)-1)
	}
}
