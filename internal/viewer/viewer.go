/*
Package viewer builds the typed view models rendered by the gallery page.

View models hold plain, unescaped strings. Escaping is left to the template
layer in package render so it happens in exactly one place.
*/
package viewer
