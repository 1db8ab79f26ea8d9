// Package pagelinks extracts hyperlinks from web pages. Given a page's HTML
// and the URL it was fetched from, it produces every anchor's resolved
// absolute target together with its normalized visible text, in document
// order.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package pagelinks
