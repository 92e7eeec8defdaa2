package models

import "time"

// FileMetadata is the rendered per-file metadata kept alongside cached
// content. Dependencies holds base names (Dependency.swift), not paths.
type FileMetadata struct {
	FileName     string
	Module       string
	Dependencies []string
	UpdatedAt    time.Time
}

// FileContext holds everything known about one analyzed file: its canonical
// path, the content captured at analysis time, and the rendered metadata.
type FileContext struct {
	Path     string
	Content  string
	Metadata FileMetadata
}
