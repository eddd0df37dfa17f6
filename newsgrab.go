// Package newsgrab discovers article links on a news-listing page and
// extracts a bounded plain-text excerpt from each linked article.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, redis/).
package newsgrab
