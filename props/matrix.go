package props

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/spectralmesh/trimesh/halfedge"
)

// cotangentRow emits row i of the stiffness matrix through set: half the
// cotangent weight per neighbor j, then the negated row sum on the
// diagonal, so each completed row sums to zero. A failed edge leaves the
// row partially written, without its diagonal.
func cotangentRow(m halfedge.Mesh, vi halfedge.Vertex, set func(j int, w float64)) error {
	rowSum := 0.0
	for _, he := range m.HalfedgesAround(vi) {
		w, err := cotangentWeight(m, he)
		if err != nil {
			return fmt.Errorf("row %d: %w", vi, err)
		}
		half := 0.5 * w
		set(int(m.Source(he)), half)
		rowSum += half
	}
	set(int(vi), -rowSum)
	return nil
}

// parallelRows runs do over the vertex indices [0, n) split into
// contiguous chunks, one goroutine per chunk, and joins the per-vertex
// errors. Writes inside do must stay within the vertex's own row.
func parallelRows(n int, do func(i int) error) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	errsPer := make([][]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if err := do(i); err != nil {
					errsPer[w] = append(errsPer[w], err)
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()

	var errs []error
	for _, es := range errsPer {
		errs = append(errs, es...)
	}
	return errors.Join(errs...)
}

// CotangentMatrix assembles the n×n cotangent (stiffness) matrix of the
// mesh. Off-diagonal (i,j) holds half the cotangent weight of the edge ij,
// written once from each endpoint's one-ring; the diagonal is the negated
// row sum, so every completed row sums to zero. Rows are assembled in
// parallel. Vertices whose ring fails (border edges) are reported in the
// joined error while the remaining rows are still assembled; degenerate
// angles propagate as non-finite entries. An empty mesh yields an empty
// matrix and no error.
func CotangentMatrix(m halfedge.Mesh) (*mat.Dense, error) {
	n := m.VertexCount()
	if n == 0 {
		return &mat.Dense{}, nil
	}
	L := mat.NewDense(n, n, nil)
	err := parallelRows(n, func(i int) error {
		return cotangentRow(m, halfedge.Vertex(i), func(j int, w float64) {
			L.Set(i, j, w)
		})
	})
	return L, err
}

// CotangentMatrixCSR assembles the same stiffness matrix in compressed
// sparse row form, for vertex counts where the dense O(n²) footprint is the
// ceiling. Assembly is serial; the error policy matches CotangentMatrix.
func CotangentMatrixCSR(m halfedge.Mesh) (*sparse.CSR, error) {
	n := m.VertexCount()
	if n == 0 {
		return sparse.NewCSR(0, 0, []int{0}, []int{}, []float64{}), nil
	}
	dok := sparse.NewDOK(n, n)
	var errs []error
	for i := 0; i < n; i++ {
		err := cotangentRow(m, halfedge.Vertex(i), func(j int, w float64) {
			dok.Set(i, j, w)
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return dok.ToCSR(), errors.Join(errs...)
}

// MassMatrix assembles the diagonal mass matrix: entry (i,i) is the vertex
// area of vertex i under the chosen method. Together with CotangentMatrix
// it forms the generalized eigenproblem Lx = λMx consumed by spectral
// applications. Failed vertices keep a zero diagonal and are reported in
// the joined error; an empty mesh yields an empty matrix and no error.
func MassMatrix(m halfedge.Mesh, method VertexAreaMethod) (*mat.DiagDense, error) {
	n := m.VertexCount()
	if n == 0 {
		return &mat.DiagDense{}, nil
	}
	M := mat.NewDiagDense(n, nil)
	err := parallelRows(n, func(i int) error {
		area, err := VertexArea(m, halfedge.Vertex(i), method)
		if err != nil {
			return err
		}
		M.SetDiag(i, area)
		return nil
	})
	return M, err
}
