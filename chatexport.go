// Package chatexport extracts conversation history from exported chat HTML
// pages and saves it as an ordered JSON list of speaker/text messages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gjson/, slog/).
package chatexport
