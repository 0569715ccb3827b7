/*
The resp package provides a high-level API for responding to HTTP requests
with JSON, configured once for an entire application.

Calling code supplies the data, status code and errors of a single response
through Fn functional options:

	doer := resp.NewResponder(resp.WithLogger(l))
	doer.Json(w, r, resp.Data(enums))

Every response body is a JSON object.
A successful one carries its payload under "data";
a failed one carries the error message under "error".
*/
package resp
