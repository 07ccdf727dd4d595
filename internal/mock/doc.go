/*
Package mock contains mock implementations of various interfaces, intended
for use in unit-tests.

There are two kinds of mocks:

  1. Mocks of interfaces defined in Lispy; and,
  2. Mocks of Go standard-library interfaces.

Type 1 mocks are located in `./pkg/...`.  Note that the directory structure
mirrors that of the root-level `pkg/` path.  Mocks of the root package are
found in `./lispy`.

Type 2 mocks are defined by a `.go` file in `./`, which contains interface
definitions that embed the standard-library interface to be mocked.  The
mock implementation is then located in a directory under `./` of the same
name.  As an example, mocks for the "io" package are defined in `./io.go`
and the generated output is found in `./io/io.go`.

The package name of all mock implementations follows the `mock_*` pattern,
where `*` is the original package name.  In the above example, the package
name is `mock_io`.
*/
package mock
