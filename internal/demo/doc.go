// Package demo is a small application served by the appshell CLI.
//
// It registers a home page, an about page and item pages on a router, and
// keeps a visit log in the store so every page has state to show.
package demo
