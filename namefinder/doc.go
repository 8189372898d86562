// Package namefinder is a client for the name-finder REST service.
//
// The service tokenizes raw text and returns, per sentence, the token
// character offsets and the token-index spans of the names it found. Result
// converts that payload into the tokens and annotations a span.Document takes.
package namefinder
