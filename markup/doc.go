// Package markup renders span documents as HTML and keeps a live HTML tree in
// sync with document changes.
//
// Tokens render as <span class="token" id="tokenN">. Each annotation wraps the
// elements of its range in <span class="TYPE" id="TYPEID">, nested the same
// way as the span.Document containment tree.
package markup
