// inspect_model dumps the node hierarchy, meshes, and animation clips
// of a GLB file. Useful when checking whether an exported avatar will
// survive the loader (TRS-only transforms, triangle meshes, linear or
// step keyframes).
//
// Usage: go run cmd/inspect_model/main.go <glb file>
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/decker502/avatarview/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/inspect_model/main.go <glb file>")
		os.Exit(1)
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	m, err := model.LoadGLB(data)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}

	fmt.Printf("Model: %s\n", m.Name)
	fmt.Printf("Nodes: %d  Meshes: %d  Clips: %d\n\n", len(m.Nodes), len(m.Meshes), len(m.Clips))

	fmt.Println("Hierarchy:")
	for _, root := range m.Roots {
		printNode(m, root, 0)
	}

	fmt.Println("\nMeshes:")
	for i, mesh := range m.Meshes {
		fmt.Printf("  [%d] %s: %d vertices, %d wireframe edges\n",
			i, mesh.Name, len(mesh.Positions), len(mesh.Edges))
	}

	fmt.Println("\nClips:")
	for i, clip := range m.Clips {
		fmt.Printf("  [%d] %s: %.2fs, %d channels\n", i, clip.Name, clip.Duration, len(clip.Channels))
		for _, ch := range clip.Channels {
			kind := "linear"
			if ch.Step {
				kind = "step"
			}
			fmt.Printf("      node %d (%s) %s, %d keys, %s\n",
				ch.Node, m.Nodes[ch.Node].Name, pathName(ch.Path), len(ch.Times), kind)
		}
	}
}

func printNode(m *model.Model, index, depth int) {
	node := &m.Nodes[index]
	mesh := ""
	if node.Mesh >= 0 {
		mesh = fmt.Sprintf(" (mesh %d)", node.Mesh)
	}
	t := node.Rest.Translation
	fmt.Printf("  %s%s%s  t=(%.2f, %.2f, %.2f)\n",
		strings.Repeat("  ", depth), node.Name, mesh, t.X(), t.Y(), t.Z())
	for _, child := range node.Children {
		printNode(m, child, depth+1)
	}
}

func pathName(p model.ChannelPath) string {
	switch p {
	case model.PathTranslation:
		return "translation"
	case model.PathRotation:
		return "rotation"
	case model.PathScale:
		return "scale"
	default:
		return "unknown"
	}
}
