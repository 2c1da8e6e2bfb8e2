// Package flatbuf is the hand-maintained equivalent of flatc's generated
// Go bindings for this module's metadata schema (Message, Schema, Field,
// RecordBatch, DictionaryBatch and their supporting tables/structs).
//
// Nothing in this package understands the rest of the module's logical
// type system; it only knows how to read and write the flatbuffer-encoded
// bytes that carry that information on the wire. The ipc package is the
// boundary that translates between the two.
package flatbuf
