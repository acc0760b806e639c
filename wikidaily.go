// Package wikidaily publishes Wikimedia editorial content as static JSON.
// It fetches Wikipedia's featured article for a set of languages and the
// Wiktionary word-of-the-day templates for a set of wikis, normalizes each
// into a small record and writes one file per source.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package wikidaily
