// Package manifest rewrites the metadata fields of a package.json while
// leaving every other field, and the key order, as it was.
package manifest
