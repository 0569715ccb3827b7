/*
Package api serves the enumerations of a [display.Catalog] as JSON over HTTP.

The routes are:

	GET /enums                   names of every enumeration
	GET /enums/{name}            every value of an enumeration in display order; ?group= filters by group name
	GET /enums/{name}/{symbol}   a single value of an enumeration, matched by symbolic name
*/
package api
