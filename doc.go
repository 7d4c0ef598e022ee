// Package kurv tracks personal food purchases: what was bought, where, how
// much it cost, and how prices compare across stores once quantities are
// normalized to a base unit and amounts to a single anchor currency.
//
// The collection lives in an embedded structured store (sqlite) with a flat
// JSON mirror as best-effort fallback. The Tracker orchestrates loading,
// CRUD, filtering, sorting and price comparison; the kt command line and
// the optional HTTP server are thin layers above it.
package kurv
