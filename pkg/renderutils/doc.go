// Package renderutils implements the value formatting routines called by
// template renderers: case conversion, escaping, masking, date and time
// formatting, credit card checks, slugs, QR codes and short URLs.
//
// Routines are pure functions over strings, except the Fetcher methods which
// perform a blocking HTTP request. Per-call settings are read from a
// Properties block parsed with ParseProperties.
package renderutils
