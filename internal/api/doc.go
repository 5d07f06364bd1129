// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts external clients to the internal
// services: conjugation lookups, exercise generation, answer feedback, and
// the review flow.
package api
