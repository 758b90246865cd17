// Package dibkb provides structured product data extraction from rendered
// e-commerce product pages. Page markup is semi-structured and varies across
// template variants, so every field is located by an ordered chain of
// independent strategies and normalized into typed values; a page with
// missing or malformed fields still produces a complete response.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, fs/).
package dibkb
