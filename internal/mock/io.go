//go:generate mockgen -source=io.go -destination=io/io.go -package=mock_io
package mock

import "io"

type (
	Writer     interface{ io.Writer }
	ReadCloser interface{ io.ReadCloser }
)
