// Package api implements the HTTP boundary of the service. Handlers parse
// and validate requests, delegate to the service layer, and map outcomes to
// status codes. No business decisions are made here.
package api
