package hull3d

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// WriteOBJ writes the hull as a Wavefront OBJ mesh: live vertices renumbered
// from 1, one normal per face, faces in mesh order.
func (mv *MeshView) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "o hull")

	objIndex := make(map[VertexID]int)
	for i, v := range mv.Vertices() {
		objIndex[v.Index] = i + 1
		fmt.Fprintf(bw, "v %g %g %g\n", v.Pos[0], v.Pos[1], v.Pos[2])
	}

	faces := mv.Faces()
	for _, f := range faces {
		fmt.Fprintf(bw, "vn %g %g %g\n", f.Normal[0], f.Normal[1], f.Normal[2])
	}
	for i, f := range faces {
		n := i + 1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
			objIndex[f.Vertices[0]], n,
			objIndex[f.Vertices[1]], n,
			objIndex[f.Vertices[2]], n)
	}

	return errors.Wrap(bw.Flush(), "write obj")
}
