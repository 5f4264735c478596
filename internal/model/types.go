// Package model provides data structures and a loader for the viewer's
// 3D avatar assets. Assets are authored as GLTF/GLB files; parsing is
// delegated to github.com/qmuntal/gltf and the result is flattened into
// the small runtime representation the renderer and playback code need:
// a node hierarchy, wireframe meshes, and named animation clips.
package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Model is the runtime representation of a loaded avatar asset.
type Model struct {
	// Name is the asset name taken from the default scene, or "" if unnamed
	Name string

	// Nodes is the flattened node hierarchy. Children always appear after
	// their parent, so a single forward pass can compute global transforms.
	Nodes []Node

	// Roots are indices into Nodes for nodes without a parent
	Roots []int

	// Meshes holds the wireframe geometry referenced by nodes
	Meshes []Mesh

	// Clips are the animation clips in asset declaration order
	Clips []Clip
}

// Node is a single transform node in the asset hierarchy.
type Node struct {
	// Name is the node name from the asset, e.g. "Hips", "Head"
	Name string

	// Parent is the index of the parent node, or -1 for a root
	Parent int

	// Children are indices of child nodes
	Children []int

	// Mesh is the index into Model.Meshes, or -1 if the node has no mesh
	Mesh int

	// Rest is the node's rest-pose local transform
	Rest Transform
}

// Transform is a local translation/rotation/scale triple.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// IdentityTransform returns a transform that maps every point to itself.
func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Mat4 composes the transform into a single local matrix (T * R * S).
func (t Transform) Mat4() mgl32.Mat4 {
	trans := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	rot := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return trans.Mul4(rot).Mul4(scale)
}

// Mesh is wireframe geometry extracted from one asset mesh: the vertex
// positions plus the unique undirected edges of its triangles.
type Mesh struct {
	// Name is the mesh name from the asset
	Name string

	// Positions are the mesh vertices in node-local space
	Positions []mgl32.Vec3

	// Edges are index pairs into Positions, deduplicated across triangles
	Edges [][2]uint32
}

// Clip is a named animation clip with keyframed channels.
type Clip struct {
	// Name is the clip name, e.g. "idle", "wave"; never empty after loading
	// (unnamed clips get a positional fallback name)
	Name string

	// Duration is the clip length in seconds (the last keyframe time)
	Duration float64

	// Channels are the animated node properties
	Channels []Channel
}

// ChannelPath identifies which node property a channel animates.
type ChannelPath int

const (
	// PathTranslation animates Node.Rest.Translation
	PathTranslation ChannelPath = iota
	// PathRotation animates Node.Rest.Rotation
	PathRotation
	// PathScale animates Node.Rest.Scale
	PathScale
)

// Channel is a keyframed track targeting a single node property.
// Exactly one of Vec/Quat is populated depending on Path: rotation
// channels use Quat, translation and scale channels use Vec.
type Channel struct {
	// Node is the index of the targeted node in Model.Nodes
	Node int

	// Path selects the animated property
	Path ChannelPath

	// Step disables interpolation between keyframes (GLTF STEP sampler)
	Step bool

	// Times are the keyframe timestamps in seconds, strictly increasing
	Times []float32

	// Vec holds translation/scale keyframe values, len == len(Times)
	Vec []mgl32.Vec3

	// Quat holds rotation keyframe values, len == len(Times)
	Quat []mgl32.Quat
}
