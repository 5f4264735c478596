package model

import (
	"bytes"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLB decodes a GLTF/GLB asset from raw bytes into a Model.
// Node transforms must be expressed as TRS (animated nodes are required to
// be by the GLTF spec); a node-level matrix is ignored with a warning.
//
// Returns an error if the document cannot be decoded, if a mesh has no
// POSITION attribute, or if an animation references accessors with a
// layout the viewer does not understand.
func LoadGLB(data []byte) (*Model, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(data)).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode gltf document: %w", err)
	}
	return buildModel(doc)
}

// buildModel flattens a decoded GLTF document into the runtime Model.
func buildModel(doc *gltf.Document) (*Model, error) {
	m := &Model{}

	meshIndex := make(map[int]int) // gltf mesh index -> Model.Meshes index
	for i, gm := range doc.Meshes {
		mesh, err := buildMesh(doc, gm)
		if err != nil {
			return nil, fmt.Errorf("mesh %d (%q): %w", i, gm.Name, err)
		}
		meshIndex[i] = len(m.Meshes)
		m.Meshes = append(m.Meshes, mesh)
	}

	if err := buildNodes(doc, m, meshIndex); err != nil {
		return nil, err
	}

	for i, ga := range doc.Animations {
		clip, err := buildClip(doc, ga, i)
		if err != nil {
			return nil, fmt.Errorf("animation %d (%q): %w", i, ga.Name, err)
		}
		m.Clips = append(m.Clips, clip)
	}

	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		m.Name = doc.Scenes[*doc.Scene].Name
	}

	return m, nil
}

// buildMesh extracts vertex positions and deduplicated triangle edges
// from every primitive of a GLTF mesh.
func buildMesh(doc *gltf.Document, gm *gltf.Mesh) (Mesh, error) {
	mesh := Mesh{Name: gm.Name}
	seen := make(map[[2]uint32]struct{})

	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			log.Printf("[Model] Skipping primitive with unsupported mode %v in mesh %q", prim.Mode, gm.Name)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			return Mesh{}, fmt.Errorf("primitive has no POSITION attribute")
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return Mesh{}, fmt.Errorf("POSITION accessor index %d out of range", posIdx)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return Mesh{}, fmt.Errorf("failed to read positions: %w", err)
		}

		base := uint32(len(mesh.Positions))
		for _, p := range positions {
			mesh.Positions = append(mesh.Positions, mgl32.Vec3{p[0], p[1], p[2]})
		}

		var indices []uint32
		if prim.Indices != nil {
			if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
				return Mesh{}, fmt.Errorf("index accessor %d out of range", *prim.Indices)
			}
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return Mesh{}, fmt.Errorf("failed to read indices: %w", err)
			}
		} else {
			// Non-indexed triangles: consecutive vertex triples
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := base+indices[i], base+indices[i+1], base+indices[i+2]
			addEdge(&mesh, seen, a, b)
			addEdge(&mesh, seen, b, c)
			addEdge(&mesh, seen, c, a)
		}
	}

	return mesh, nil
}

// addEdge appends an undirected edge once, regardless of winding.
func addEdge(mesh *Mesh, seen map[[2]uint32]struct{}, a, b uint32) {
	if a == b {
		return
	}
	if a > b {
		a, b = b, a
	}
	key := [2]uint32{a, b}
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}
	mesh.Edges = append(mesh.Edges, key)
}

// buildNodes flattens the GLTF node array into Model.Nodes, resolving
// parents, roots, and mesh references. GLTF nodes already form a forest
// where each node has at most one parent.
func buildNodes(doc *gltf.Document, m *Model, meshIndex map[int]int) error {
	m.Nodes = make([]Node, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		node := Node{
			Name:   gn.Name,
			Parent: -1,
			Mesh:   -1,
			Rest:   restTransform(gn),
		}
		if gn.Mesh != nil {
			mi, ok := meshIndex[*gn.Mesh]
			if !ok {
				return fmt.Errorf("node %q references unknown mesh %d", gn.Name, *gn.Mesh)
			}
			node.Mesh = mi
		}
		node.Children = append(node.Children, gn.Children...)
		m.Nodes[i] = node
	}

	for i, gn := range doc.Nodes {
		for _, child := range gn.Children {
			if child < 0 || child >= len(m.Nodes) {
				return fmt.Errorf("node %q has out-of-range child %d", gn.Name, child)
			}
			m.Nodes[child].Parent = i
		}
	}

	for i := range m.Nodes {
		if m.Nodes[i].Parent == -1 {
			m.Roots = append(m.Roots, i)
		}
	}

	if !parentsPrecedeChildren(m.Nodes) {
		return fmt.Errorf("node hierarchy is not topologically ordered")
	}

	return nil
}

// parentsPrecedeChildren reports whether every node's parent appears
// earlier in the array, the ordering the pose math relies on. Assets
// exported by standard tooling satisfy this.
func parentsPrecedeChildren(nodes []Node) bool {
	for i, n := range nodes {
		if n.Parent >= i {
			return false
		}
	}
	return true
}

// restTransform reads the node's TRS, applying GLTF defaults for
// absent rotation (identity) and scale (one).
func restTransform(gn *gltf.Node) Transform {
	t := Transform{
		Translation: mgl32.Vec3{
			float32(gn.Translation[0]),
			float32(gn.Translation[1]),
			float32(gn.Translation[2]),
		},
		Rotation: mgl32.Quat{
			W: float32(gn.Rotation[3]),
			V: mgl32.Vec3{
				float32(gn.Rotation[0]),
				float32(gn.Rotation[1]),
				float32(gn.Rotation[2]),
			},
		},
		Scale: mgl32.Vec3{
			float32(gn.Scale[0]),
			float32(gn.Scale[1]),
			float32(gn.Scale[2]),
		},
	}
	if gn.Rotation == [4]float64{} {
		t.Rotation = mgl32.QuatIdent()
	}
	if gn.Scale == [3]float64{} {
		t.Scale = mgl32.Vec3{1, 1, 1}
	}
	if gn.Matrix != [16]float64{} && gn.Matrix != gltfIdentity {
		log.Printf("[Model] Node %q uses a matrix transform; only TRS is supported, matrix ignored", gn.Name)
	}
	return t
}

// gltfIdentity is the column-major identity matrix as stored in GLTF nodes.
var gltfIdentity = [16]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// buildClip converts one GLTF animation into a Clip. Channels with
// unsupported interpolation or targets are skipped with a warning so a
// partially supported asset still animates.
func buildClip(doc *gltf.Document, ga *gltf.Animation, index int) (Clip, error) {
	clip := Clip{Name: ga.Name}
	if clip.Name == "" {
		clip.Name = fmt.Sprintf("clip_%d", index)
	}

	for ci, gc := range ga.Channels {
		if gc.Target.Node == nil {
			log.Printf("[Model] Clip %q channel %d has no target node, skipped", clip.Name, ci)
			continue
		}
		if gc.Sampler < 0 || gc.Sampler >= len(ga.Samplers) {
			return Clip{}, fmt.Errorf("channel %d references invalid sampler", ci)
		}
		sampler := ga.Samplers[gc.Sampler]

		if sampler.Interpolation == gltf.InterpolationCubicSpline {
			log.Printf("[Model] Clip %q channel %d uses cubic spline interpolation, skipped", clip.Name, ci)
			continue
		}

		var path ChannelPath
		switch gc.Target.Path {
		case gltf.TRSTranslation:
			path = PathTranslation
		case gltf.TRSRotation:
			path = PathRotation
		case gltf.TRSScale:
			path = PathScale
		default:
			log.Printf("[Model] Clip %q channel %d targets unsupported path, skipped", clip.Name, ci)
			continue
		}

		times, err := readTimes(doc, &sampler.Input)
		if err != nil {
			return Clip{}, fmt.Errorf("channel %d input: %w", ci, err)
		}

		ch := Channel{
			Node:  *gc.Target.Node,
			Path:  path,
			Step:  sampler.Interpolation == gltf.InterpolationStep,
			Times: times,
		}

		if err := readValues(doc, &sampler.Output, path, &ch); err != nil {
			return Clip{}, fmt.Errorf("channel %d output: %w", ci, err)
		}

		want := len(ch.Vec)
		if path == PathRotation {
			want = len(ch.Quat)
		}
		if want != len(times) {
			return Clip{}, fmt.Errorf("channel %d has %d keyframes but %d values", ci, len(times), want)
		}

		if len(times) > 0 {
			last := float64(times[len(times)-1])
			if last > clip.Duration {
				clip.Duration = last
			}
		}

		clip.Channels = append(clip.Channels, ch)
	}

	return clip, nil
}

// readTimes decodes a sampler input accessor into keyframe timestamps.
func readTimes(doc *gltf.Document, input *int) ([]float32, error) {
	if input == nil || *input < 0 || *input >= len(doc.Accessors) {
		return nil, fmt.Errorf("missing input accessor")
	}
	raw, err := modeler.ReadAccessor(doc, doc.Accessors[*input], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read accessor: %w", err)
	}
	times, ok := raw.([]float32)
	if !ok {
		return nil, fmt.Errorf("input accessor is not scalar float")
	}
	return times, nil
}

// readValues decodes a sampler output accessor into the channel's
// Vec or Quat keyframe values.
func readValues(doc *gltf.Document, output *int, path ChannelPath, ch *Channel) error {
	if output == nil || *output < 0 || *output >= len(doc.Accessors) {
		return fmt.Errorf("missing output accessor")
	}
	raw, err := modeler.ReadAccessor(doc, doc.Accessors[*output], nil)
	if err != nil {
		return fmt.Errorf("failed to read accessor: %w", err)
	}

	switch path {
	case PathRotation:
		values, ok := raw.([][4]float32)
		if !ok {
			return fmt.Errorf("rotation output accessor is not vec4 float")
		}
		ch.Quat = make([]mgl32.Quat, len(values))
		for i, v := range values {
			ch.Quat[i] = mgl32.Quat{W: v[3], V: mgl32.Vec3{v[0], v[1], v[2]}}.Normalize()
		}
	default:
		values, ok := raw.([][3]float32)
		if !ok {
			return fmt.Errorf("output accessor is not vec3 float")
		}
		ch.Vec = make([]mgl32.Vec3, len(values))
		for i, v := range values {
			ch.Vec[i] = mgl32.Vec3{v[0], v[1], v[2]}
		}
	}
	return nil
}
