// Package signature parses signature listings into records.
//
// A listing describes every function and method of an API implementation:
//
//	files
//	  varargs:
//	    str
//	  returns:
//	    list[file]
//	extension:fs.relative_to
//	  posargs:
//	    str | file
//	    str | file
//	  returns:
//	    str
//	custom_target
//	  kwargs:
//	    command: list[str | file]
//	    install: bool
//
// Parse returns a Set keyed by qualified name.
package signature
