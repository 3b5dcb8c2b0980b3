// Package bookstore holds the records generated from schema.yaml. They are
// checked in and used as the reference output of the generator.
package bookstore

//go:generate go run ../../cmd/recordgen generate --schema schema.yaml --target . --package github.com/syssam/recordgen/internal/bookstore
