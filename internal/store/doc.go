// Package store is the client's on-device storage.
//
// Everything lives as JSON files under one directory, the equivalent of the
// mobile app's local storage:
//
//   - recent_searches.json   the recent search terms
//   - session.json           the last session, with its token sealed
//   - device.json            a random install id sent as X-Device-ID
//
// Writes go through a temp file and a rename, so a crash never leaves a
// half-written file behind.
package store
