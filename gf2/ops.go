package gf2

// Transpose returns the transpose of m. Transpose of a 0-row matrix (or
// a matrix whose rows are zero-length) is the empty matrix, per the
// degenerate-input contract.
func Transpose(m Matrix) (Matrix, error) {
	if err := validateRectangular(m); err != nil {
		return nil, gf2Errorf("Transpose", err)
	}
	rows := len(m)
	if rows == 0 {
		return Matrix{}, nil
	}
	cols := len(m[0])
	if cols == 0 {
		return Matrix{}, nil
	}

	out := make(Matrix, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]byte, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}
	return out, nil
}

// RREF returns the reduced row echelon form of m, computed via
// Gauss-Jordan elimination over GF(2). m is not mutated.
func RREF(m Matrix) (Matrix, error) {
	if err := validateRectangular(m); err != nil {
		return nil, gf2Errorf("RREF", err)
	}
	rows := len(m)
	if rows == 0 {
		return Matrix{}, nil
	}
	cols := len(m[0])

	out := cloneMatrix(m)
	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		pivot := findPivot(out, pivotRow, col)
		if pivot == -1 {
			continue
		}
		out[pivotRow], out[pivot] = out[pivot], out[pivotRow]
		eliminateColumn(out, pivotRow, col)
		pivotRow++
	}
	return out, nil
}

// Solve returns some x satisfying Mx = b, if one exists. ok reports
// whether a solution was found; when ok is false, the system is
// infeasible (this is reported as a regular "no solution" outcome, not
// as an error). The returned x is not necessarily unique: free variables
// are set to 0. A zero-row system (len(m) == 0) is solvable only by the
// empty vector, matching the degenerate-input contract.
func Solve(m Matrix, b Vector) (Vector, bool, error) {
	if err := validateRectangular(m); err != nil {
		return nil, false, gf2Errorf("Solve", err)
	}
	rows := len(m)
	if rows == 0 {
		if len(b) != 0 {
			return nil, false, gf2Errorf("Solve", ErrDimensionMismatch)
		}
		return Vector{}, true, nil
	}
	if len(b) != rows {
		return nil, false, gf2Errorf("Solve", ErrDimensionMismatch)
	}
	cols := len(m[0])

	aug := make(Matrix, rows)
	for i, row := range m {
		aug[i] = make([]byte, cols+1)
		copy(aug[i], row)
		aug[i][cols] = b[i]
	}

	pivotRow := 0
	pivotCols := make([]int, 0, rows)
	for col := 0; col < cols && pivotRow < rows; col++ {
		pivot := findPivot(aug, pivotRow, col)
		if pivot == -1 {
			continue
		}
		aug[pivotRow], aug[pivot] = aug[pivot], aug[pivotRow]
		eliminateColumn(aug, pivotRow, col)
		pivotCols = append(pivotCols, col)
		pivotRow++
	}

	// Any row with an all-zero coefficient block but a nonzero RHS means
	// Mx = b has no solution.
	for i := pivotRow; i < rows; i++ {
		allZero := true
		for c := 0; c < cols; c++ {
			if aug[i][c] != 0 {
				allZero = false
				break
			}
		}
		if allZero && aug[i][cols] != 0 {
			return nil, false, nil
		}
	}

	x := make(Vector, cols)
	for i, c := range pivotCols {
		x[c] = aug[i][cols]
	}
	return x, true, nil
}

// RowSpaceContains reports whether b lies in the row space of M, i.e.
// whether there exists y with yᵀM = bᵀ — equivalently, whether
// Mᵀx = b is solvable.
func RowSpaceContains(m Matrix, b Vector) (bool, error) {
	mt, err := Transpose(m)
	if err != nil {
		return false, gf2Errorf("RowSpaceContains", err)
	}
	_, ok, err := Solve(mt, b)
	if err != nil {
		return false, gf2Errorf("RowSpaceContains", err)
	}
	return ok, nil
}

// Multiply computes the GF(2) product a·b. The number of columns of a
// must equal the number of rows of b.
func Multiply(a, b Matrix) (Matrix, error) {
	if err := validateRectangular(a); err != nil {
		return nil, gf2Errorf("Multiply", err)
	}
	if err := validateRectangular(b); err != nil {
		return nil, gf2Errorf("Multiply", err)
	}
	ra := len(a)
	if ra == 0 {
		return Matrix{}, nil
	}
	ca := len(a[0])
	rb := len(b)
	if ca != rb {
		return nil, gf2Errorf("Multiply", ErrDimensionMismatch)
	}
	cb := 0
	if rb > 0 {
		cb = len(b[0])
	}

	out := make(Matrix, ra)
	for i := 0; i < ra; i++ {
		out[i] = make([]byte, cb)
		for k := 0; k < ca; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < cb; j++ {
				out[i][j] ^= b[k][j]
			}
		}
	}
	return out, nil
}

// MultiplyVector computes M·x, the workhorse behind the decoder's
// syndrome round-trip check: H·estimate should reproduce the syndrome.
func MultiplyVector(m Matrix, x Vector) (Vector, error) {
	if err := validateRectangular(m); err != nil {
		return nil, gf2Errorf("MultiplyVector", err)
	}
	rows := len(m)
	if rows == 0 {
		if len(x) != 0 {
			return nil, gf2Errorf("MultiplyVector", ErrDimensionMismatch)
		}
		return Vector{}, nil
	}
	cols := len(m[0])
	if len(x) != cols {
		return nil, gf2Errorf("MultiplyVector", ErrDimensionMismatch)
	}

	out := make(Vector, rows)
	for i := 0; i < rows; i++ {
		var acc byte
		for j := 0; j < cols; j++ {
			acc ^= m[i][j] & x[j]
		}
		out[i] = acc
	}
	return out, nil
}

// XORAccumulate applies residual ^= delta in place: residual[i] ^=
// delta[i] for every i. Used by tests to fold an injected error into a
// running residual syndrome.
func XORAccumulate(residual, delta Vector) error {
	if len(residual) != len(delta) {
		return gf2Errorf("XORAccumulate", ErrDimensionMismatch)
	}
	for i := range residual {
		residual[i] ^= delta[i]
	}
	return nil
}

// SwapRows exchanges rows i and j of m in place.
func SwapRows(m Matrix, i, j int) error {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m) {
		return gf2Errorf("SwapRows", ErrIndexOutOfRange)
	}
	m[i], m[j] = m[j], m[i]
	return nil
}

// findPivot returns the first row at or after fromRow whose value in col
// is 1, or -1 if none exists.
func findPivot(m Matrix, fromRow, col int) int {
	for i := fromRow; i < len(m); i++ {
		if m[i][col] == 1 {
			return i
		}
	}
	return -1
}

// eliminateColumn XORs pivotRow into every other row that has a 1 in col,
// clearing that column everywhere except pivotRow.
func eliminateColumn(m Matrix, pivotRow, col int) {
	for i := range m {
		if i != pivotRow && m[i][col] == 1 {
			xorRowInto(m[i], m[pivotRow])
		}
	}
}

// xorRowInto applies dst ^= src element-wise, in place.
func xorRowInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// cloneMatrix returns a deep copy of m.
func cloneMatrix(m Matrix) Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]byte, len(row))
		copy(out[i], row)
	}
	return out
}
