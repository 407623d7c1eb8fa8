// Package export drives a complete graph export: traversal, emission and
// writing the output file.
//
// # Lifecycle
//
// An [Exporter] is created for one destination, populated once and
// finalized once:
//
//	e, err := export.New("demo.json", project, s)
//	if err != nil {
//	    return err
//	}
//	if err := e.Write(); err != nil { // traverse the project
//	    return err
//	}
//	return e.Close() // encode and write the file
//
// A second call to Write fails with ALREADY_WRITTEN; Close writes the file on
// the first call and does nothing afterwards. Calling Close without Write
// produces a graph that only carries the project-level metadata.
//
// If the destination cannot be created, Close reports an OUTPUT_ERROR and
// writes nothing.
//
// # Formats
//
//	json  structured graph document (default)
//	dot   Graphviz source
//	svg   diagram rendered in-process with Graphviz
//	pdf   diagram converted with rsvg-convert
//	png   diagram converted with rsvg-convert
package export
