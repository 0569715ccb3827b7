/*
Package catalog declares enumerations in YAML or JSON documents rather than Go code.

A catalog file lists enumerations and their members:

	enums:
	  - name: OrderStatus
	    members:
	      - symbol: Pending
	        value: 1
	        display:
	          name: Pending review
	          groupName: Open
	          order: 2
	      - symbol: Shipped
	        value: 2

Every enumeration in a [*Catalog] is a [display.Table] of [Code] values.
A *Catalog implements [display.Catalog], so it can back the same consumers
as enumerations registered in Go, such as the HTTP API.
*/
package catalog
