// Package env keeps names of environment variables with special significance
// to setvar.
package env

// Environment variables with special significance to setvar.
const (
	CDPATH          = "CDPATH"
	HOME            = "HOME"
	PATH            = "PATH"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_DATA_HOME   = "XDG_DATA_HOME"
)

// PathVariables lists the variables whose elements are directories. Their
// values are checked before being assigned, and they are split on the path
// list separator when imported from the environment.
var PathVariables = []string{PATH, CDPATH}
