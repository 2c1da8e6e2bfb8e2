/*
Package columnwire defines the logical type system shared by the rest of
the module: DataType and its concrete implementations, Field, Schema and
Metadata.

It describes the shape of columnar data independent of how that data is
physically laid out in memory (see the memory package) or framed on the
wire (see the ipc package).
*/
package columnwire

// stringer
//go:generate stringer -type=Type
