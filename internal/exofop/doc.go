// Package exofop speaks the ExoFOP-TESS web upload protocol: the session
// login, the time-series metadata insert, and the per-file multipart upload.
// The endpoints are plain PHP form handlers, so the client mirrors exactly
// what the website's own forms post. Any HTTP failure is terminal; the
// caller never retries a partially submitted run.
package exofop
