// Package handlers declares the relay's HTTP routes.
//
// Contact serves POST /api/submit and maps contact.Relay errors onto the
// public contract: 400 for rejected input, 500 when the provider fails,
// 504 when it does not answer in time. Resume serves GET /resume as a
// download.
package handlers
