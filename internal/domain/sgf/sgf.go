package sgf

import (
	"sort"
	"strings"
)

// GameTree is one SGF tree: the main line of nodes plus variations.
type GameTree struct {
	Nodes    []Node
	Children []*GameTree
}

// Node is a set of properties such as B[dd], W[cc], C[...]. A property may
// carry several values (AB[aa][bb]).
type Node struct {
	Properties map[string][]string
}

type SGF struct {
	Root *GameTree
}

// NewRecord starts a record whose root node holds props.
func NewRecord(props map[string][]string) SGF {
	return SGF{Root: &GameTree{Nodes: []Node{{Properties: props}}}}
}

// AppendNode adds a node with a single property to the main line.
func (t *GameTree) AppendNode(key string, values ...string) {
	t.Nodes = append(t.Nodes, Node{Properties: map[string][]string{key: values}})
}

// well-known properties in a fixed order; anything else follows sorted by name
var orderedKeys = []string{"FF", "GM", "SZ", "PB", "PW", "DT", "RE", "KM", "RU", "C", "B", "W"}

func (s *SGF) String() string {
	var builder strings.Builder
	builder.WriteString("(")
	if s.Root != nil {
		serializeGameTree(&builder, s.Root)
	}
	builder.WriteString(")")
	return builder.String()
}

func serializeGameTree(builder *strings.Builder, tree *GameTree) {
	for _, node := range tree.Nodes {
		builder.WriteString(";")

		used := make(map[string]bool, len(node.Properties))
		for _, key := range orderedKeys {
			if values, ok := node.Properties[key]; ok {
				used[key] = true
				writeProperty(builder, key, values)
			}
		}

		rest := make([]string, 0, len(node.Properties)-len(used))
		for key := range node.Properties {
			if !used[key] {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		for _, key := range rest {
			writeProperty(builder, key, node.Properties[key])
		}
	}

	for _, child := range tree.Children {
		builder.WriteString("(")
		serializeGameTree(builder, child)
		builder.WriteString(")")
	}
}

func writeProperty(builder *strings.Builder, key string, values []string) {
	builder.WriteString(key)
	for _, v := range values {
		builder.WriteByte('[')
		builder.WriteString(escapeValue(v))
		builder.WriteByte(']')
	}
}

func escapeValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, "]", `\]`)
}
