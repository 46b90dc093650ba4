// Package registry discovers template fragments on disk and resolves the
// fragment names used in markers to fragment files.
//
// A fragment is any file whose name ends with the configured suffix (for
// example ".template.c"). A name resolves by suffix match against the full
// path, so "array_define" finds "arrays/array_define.template.c" and a name
// may carry directory components to disambiguate ("arrays/array_define").
package registry
